package resetpassword

import (
	"context"
	"errors"
	c "mapacademy/internal/core/domain/common"
	"mapacademy/internal/core/domain/logging"
	"mapacademy/internal/core/domain/user"
	"mapacademy/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	EMAIL        = c.Email("test@test.test")
	OLD_PASSWORD = user.RawPassword("old-password")
	NEW_PASSWORD = user.RawPassword("new-password")
	RESET_TOKEN  = user.PasswordResetToken("test-reset-token")
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	UserRepository *user.FakeUserRepository
	PasswordHasher *user.FakePasswordHasher
	Now            time.Time
	Service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.PasswordHasher = user.NewFakePasswordHasher()
	suite.Now = NOW
	suite.Service = New(
		suite.Logger,
		suite.UserRepository,
		suite.PasswordHasher,
		func() time.Time { return suite.Now },
	)
}

func TestResetPasswordService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) createUserWithResetWindow() user.User {
	ctx := context.Background()
	passwordHash, _ := suite.PasswordHasher.HashPassword(OLD_PASSWORD)
	u, err := suite.UserRepository.Create(
		ctx,
		user.CreateUserInput{Email: EMAIL, PasswordHash: passwordHash, CreatedAt: NOW},
	)
	suite.Require().Nil(err)
	u, err = suite.UserRepository.SetPasswordResetToken(ctx, user.SetPasswordResetTokenInput{
		UserID:    u.ID,
		Token:     RESET_TOKEN,
		ExpiresAt: NOW.Add(10 * time.Minute),
	})
	suite.Require().Nil(err)
	return u
}

func (suite *testSuite) TestSuccess() {
	u := suite.createUserWithResetWindow()
	ctx := context.Background()

	_, err := suite.Service.Run(ctx, Input{UserID: u.ID, Token: RESET_TOKEN, NewPassword: NEW_PASSWORD})

	assert := suite.Require()
	assert.Nil(err)

	updated, err := suite.UserRepository.GetByEmail(ctx, EMAIL)
	assert.Nil(err)
	assert.True(suite.PasswordHasher.ValidatePassword(NEW_PASSWORD, updated.PasswordHash))
	assert.False(suite.PasswordHasher.ValidatePassword(OLD_PASSWORD, updated.PasswordHash))
	assert.False(updated.ResetToken.IsPresent)
	assert.False(updated.ResetTokenExpiresAt.IsPresent)
}

func (suite *testSuite) TestTokenIsSingleUse() {
	u := suite.createUserWithResetWindow()
	ctx := context.Background()

	_, err := suite.Service.Run(ctx, Input{UserID: u.ID, Token: RESET_TOKEN, NewPassword: NEW_PASSWORD})
	suite.Require().Nil(err)

	_, err = suite.Service.Run(
		ctx,
		Input{UserID: u.ID, Token: RESET_TOKEN, NewPassword: user.RawPassword("another-password")},
	)
	suite.Require().True(errors.Is(err, user.ErrPasswordResetTokenExpired))
}

func (suite *testSuite) TestExpiredToken() {
	u := suite.createUserWithResetWindow()
	suite.Now = NOW.Add(10 * time.Minute)

	_, err := suite.Service.Run(
		context.Background(),
		Input{UserID: u.ID, Token: RESET_TOKEN, NewPassword: NEW_PASSWORD},
	)

	suite.Require().True(errors.Is(err, user.ErrPasswordResetTokenExpired))
}

func (suite *testSuite) TestWrongUserID() {
	u := suite.createUserWithResetWindow()

	_, err := suite.Service.Run(
		context.Background(),
		Input{UserID: u.ID + 1, Token: RESET_TOKEN, NewPassword: NEW_PASSWORD},
	)

	suite.Require().True(errors.Is(err, user.ErrPasswordResetTokenExpired))
}

func (suite *testSuite) TestWrongToken() {
	u := suite.createUserWithResetWindow()

	_, err := suite.Service.Run(
		context.Background(),
		Input{UserID: u.ID, Token: user.PasswordResetToken("wrong"), NewPassword: NEW_PASSWORD},
	)

	assert := suite.Require()
	assert.True(errors.Is(err, user.ErrPasswordResetTokenExpired))

	unchanged, err := suite.UserRepository.GetByEmail(context.Background(), EMAIL)
	assert.Nil(err)
	assert.True(suite.PasswordHasher.ValidatePassword(OLD_PASSWORD, unchanged.PasswordHash))
	assert.True(unchanged.ResetToken.IsPresent)
}
