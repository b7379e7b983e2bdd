package resetpassword

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
	UserID      user.ID
	Token       user.PasswordResetToken
	NewPassword user.RawPassword
}

type Result struct{}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	passwordHasher user.PasswordHasher
	now            func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	passwordHasher user.PasswordHasher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
		passwordHasher: passwordHasher,
		now:            now,
	}
}

// Run looks the reset window up and then overwrites the password. The two
// steps are not serialized against concurrent redemptions; see UpdatePassword
// for the write that consumes the window.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByIDAndResetToken(ctx, input.UserID, input.Token, s.now())
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return result, user.ErrPasswordResetTokenExpired
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user by id and reset token.",
			logging.Entry("userID", input.UserID),
			logging.Entry("err", err),
		)
		return result, err
	}

	newPasswordHash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		s.log.Error(ctx, "Could not hash new password.", logging.Entry("err", err))
		return result, err
	}

	err = s.userRepository.UpdatePassword(ctx, u.ID, newPasswordHash)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not update user password.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"New password has been successfully set.",
		logging.Entry("userID", u.ID),
	)
	return result, nil
}
