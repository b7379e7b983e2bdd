package validatepasswordresettoken

import (
	"context"
	"errors"
	e "mapacademy/internal/core/domain/errors"
	"mapacademy/internal/core/domain/logging"
	"mapacademy/internal/core/domain/user"
	"mapacademy/internal/core/services"
	"time"
)

type Input struct {
	Token user.PasswordResetToken
}

type Result struct {
	UserID user.ID
	Token  user.PasswordResetToken
}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	now            func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByResetToken(ctx, input.Token, s.now())
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		// An unknown, consumed and expired token are indistinguishable
		// on purpose.
		return result, user.ErrPasswordResetTokenExpired
	}
	if err != nil {
		s.log.Error(ctx, "Could not get user by reset token.", logging.Entry("err", err))
		return result, err
	}
	return Result{UserID: u.ID, Token: input.Token}, nil
}
