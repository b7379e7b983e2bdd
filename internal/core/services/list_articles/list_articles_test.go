package listarticles

import (
	"context"
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

func TestListArticlesService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestEmpty() {
	result, err := suite.Service.Run(context.Background(), Input{})

	assert := suite.Require()
	assert.Nil(err)
	assert.NotNil(result.Articles)
	assert.Len(result.Articles, 0)
}

func (suite *testSuite) TestReturnsAllArticles() {
	for _, title := range []string{"First", "Second", "Third"} {
		_, err := suite.ArticleRepository.Create(context.Background(), article.CreateArticleInput{
			Title:     title,
			Body:      "Test body",
			Date:      "2023-06-01",
			CreatedAt: NOW,
		})
		suite.Require().Nil(err)
	}

	result, err := suite.Service.Run(context.Background(), Input{})

	assert := suite.Require()
	assert.Nil(err)
	assert.Len(result.Articles, 3)
}

func (suite *testSuite) TestRepositoryError() {
	suite.ArticleRepository.ReturnError = true

	_, err := suite.Service.Run(context.Background(), Input{})

	suite.Require().NotNil(err)
}
