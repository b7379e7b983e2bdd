package sendpasswordresettoken

import (
	"context"
	"errors"
	c "mapacademy/internal/core/domain/common"
	e "mapacademy/internal/core/domain/errors"
	"mapacademy/internal/core/domain/logging"
	"mapacademy/internal/core/domain/user"
	"mapacademy/internal/core/services"
	"time"
)

type Input struct {
	Email c.Email
}

type Result struct {
	User  user.User
	Token user.PasswordResetToken
}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	tokenGenerator user.PasswordResetTokenGenerator
	validDuration  time.Duration
	now            func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	tokenGenerator user.PasswordResetTokenGenerator,
	validDuration time.Duration,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if tokenGenerator == nil {
		panic(e.NewNilArgumentError("tokenGenerator"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
		tokenGenerator: tokenGenerator,
		validDuration:  validDuration,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(ctx, "User not found for password reset.", logging.Entry("email", input.Email))
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user by email.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	token, err := s.tokenGenerator.GenerateToken()
	if err != nil {
		s.log.Error(ctx, "Could not generate password reset token.", logging.Entry("err", err))
		return result, err
	}

	// Overwrites any previously open reset window for the user.
	u, err = s.userRepository.SetPasswordResetToken(ctx, user.SetPasswordResetTokenInput{
		UserID:    u.ID,
		Token:     token,
		ExpiresAt: s.now().Add(s.validDuration),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not set password reset token.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Password reset window has been opened for the user.",
		logging.Entry("userID", u.ID),
	)
	return Result{User: u, Token: token}, nil
}
