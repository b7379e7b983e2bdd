package getarticle

import (
	"context"
	"errors"
	"testing"
	"time"

	"mapacademy/internal/core/domain/article"
	"mapacademy/internal/core/domain/logging"
	"mapacademy/internal/core/services"

	"github.com/stretchr/testify/suite"
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger            *logging.FakeLogger
	ArticleRepository *article.FakeArticleRepository
	Service           services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.ArticleRepository = article.NewFakeArticleRepository()
	suite.Service = New(suite.Logger, suite.ArticleRepository)
}

func TestGetArticleService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	created, err := suite.ArticleRepository.Create(context.Background(), article.CreateArticleInput{
		Title:     "Test title",
		Body:      "Test body",
		Date:      "2023-06-01",
		CreatedAt: NOW,
	})
	suite.Require().Nil(err)

	result, err := suite.Service.Run(context.Background(), Input{ArticleID: created.ID})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(created, result.Article)
}

func (suite *testSuite) TestArticleDoesNotExist() {
	_, err := suite.Service.Run(context.Background(), Input{ArticleID: article.ID(111222333)})

	suite.Require().True(errors.Is(err, article.ErrArticleDoesNotExist))
}
