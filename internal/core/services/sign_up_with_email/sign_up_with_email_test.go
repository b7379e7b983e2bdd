package signupwithemail

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
	RAW_PASSWORD = user.RawPassword("test-password")
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	UserRepository *user.FakeUserRepository
	PasswordHasher *user.FakePasswordHasher
	Service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.PasswordHasher = user.NewFakePasswordHasher()
	suite.Service = New(
		suite.Logger,
		suite.UserRepository,
		suite.PasswordHasher,
		func() time.Time { return NOW },
	)
}

func TestSignUpWithEmailService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	ctx := context.Background()
	result, err := suite.Service.Run(ctx, Input{Email: EMAIL, Password: RAW_PASSWORD})

	assert := suite.Require()
	assert.Nil(err)
	assert.NotEqual(user.ID(0), result.User.ID)
	assert.Equal(EMAIL, result.User.Email)
	assert.Equal(NOW, result.User.CreatedAt)
	assert.NotEqual(string(RAW_PASSWORD), string(result.User.PasswordHash))
	assert.False(result.User.ResetToken.IsPresent)
	assert.False(result.User.ResetTokenExpiresAt.IsPresent)
}

func (suite *testSuite) TestEmailAlreadyExistsError() {
	ctx := context.Background()
	suite.UserRepository.Create(
		ctx,
		user.CreateUserInput{
			Email:        EMAIL,
			PasswordHash: user.PasswordHash("test"),
			CreatedAt:    NOW,
		},
	)

	_, err := suite.Service.Run(ctx, Input{Email: EMAIL, Password: RAW_PASSWORD})

	assert := suite.Require()
	assert.NotNil(err)
	assert.True(errors.Is(err, user.ErrEmailAlreadyExists))
	assert.Equal(1, len(suite.UserRepository.Users))
}

func (suite *testSuite) TestSignUpSucceedsExactlyOnce() {
	ctx := context.Background()

	_, err := suite.Service.Run(ctx, Input{Email: EMAIL, Password: RAW_PASSWORD})
	suite.Require().Nil(err)

	_, err = suite.Service.Run(ctx, Input{Email: EMAIL, Password: user.RawPassword("other-password")})
	suite.Require().True(errors.Is(err, user.ErrEmailAlreadyExists))
}

func (suite *testSuite) TestRepositoryError() {
	ctx := context.Background()
	suite.UserRepository.ReturnError = true

	_, err := suite.Service.Run(ctx, Input{Email: EMAIL, Password: RAW_PASSWORD})

	assert := suite.Require()
	assert.NotNil(err)
	assert.False(errors.Is(err, user.ErrEmailAlreadyExists))
}
