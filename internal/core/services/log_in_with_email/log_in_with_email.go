package loginwithemail

import (
	"context"
	"errors"
	c "mapacademy/internal/core/domain/common"
	e "mapacademy/internal/core/domain/errors"
	"mapacademy/internal/core/domain/logging"
	"mapacademy/internal/core/domain/user"
	"mapacademy/internal/core/services"
)

type Input struct {
	Email    c.Email
	Password user.RawPassword
}

type Result struct {
	User  user.User
	Token user.AccessToken
}

type service struct {
	log               logging.Logger
	userRepository    user.UserRepository
	passwordHasher    user.PasswordHasher
	accessTokenIssuer user.AccessTokenIssuer
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	passwordHasher user.PasswordHasher,
	accessTokenIssuer user.AccessTokenIssuer,
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
	if accessTokenIssuer == nil {
		panic(e.NewNilArgumentError("accessTokenIssuer"))
	}
	return &service{
		log:               log,
		userRepository:    userRepository,
		passwordHasher:    passwordHasher,
		accessTokenIssuer: accessTokenIssuer,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(ctx, "User not found for login.", logging.Entry("email", input.Email))
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
	if !s.passwordHasher.ValidatePassword(input.Password, u.PasswordHash) {
		return result, user.ErrInvalidCredentials
	}

	token, err := s.accessTokenIssuer.Sign(u)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not sign access token for user.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "User successfully authenticated.", logging.Entry("userID", u.ID))
	return Result{User: u, Token: token}, nil
}
