package sendpasswordresettoken

import (
	"context"
	"errors"
	e "mapacademy/internal/core/domain/errors"
	"mapacademy/internal/core/domain/logging"
	"mapacademy/internal/core/domain/user"
	"mapacademy/internal/core/services"
)

type serviceWithTokenSending struct {
	log    logging.Logger
	sender user.PasswordResetTokenSender
	inner  services.Service[Input, Result]
}

// NewWithTokenSending emails the reset token after the inner service has
// persisted it. The send is fire-and-forget: a failure is logged but does
// not fail the request, so the caller still sees success while the already
// persisted reset window stays open.
func NewWithTokenSending(
	log logging.Logger,
	sender user.PasswordResetTokenSender,
	inner services.Service[Input, Result],
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &serviceWithTokenSending{
		log:    log,
		sender: sender,
		inner:  inner,
	}
}

func (s *serviceWithTokenSending) Run(ctx context.Context, input Input) (result Result, err error) {
	result, err = s.inner.Run(ctx, input)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Info(ctx, "Skip sending password reset token.", logging.Entry("err", err))
		return result, err
	}

	err = s.sender.SendToken(ctx, result.User, result.Token)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not send password reset token.",
			logging.Entry("userID", result.User.ID),
			logging.Entry("err", err),
		)
		return result, nil
	}

	s.log.Info(
		ctx,
		"Password reset token has been sent to the user.",
		logging.Entry("userID", result.User.ID),
	)
	return result, nil
}
