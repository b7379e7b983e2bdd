package createarticle

import (
	"context"
	"errors"
	"mapacademy/internal/core/domain/article"
	c "mapacademy/internal/core/domain/common"
	e "mapacademy/internal/core/domain/errors"
	"mapacademy/internal/core/domain/logging"
	"mapacademy/internal/core/services"
	"time"
)

type Input struct {
	Title    string
	Body     string
	ImageURL c.Optional[string]
	Date     string
}

type Result struct {
	Article article.Article
}

type service struct {
	log               logging.Logger
	articleRepository article.ArticleRepository
	now               func() time.Time
}

func New(
	log logging.Logger,
	articleRepository article.ArticleRepository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if articleRepository == nil {
		panic(e.NewNilArgumentError("articleRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:               log,
		articleRepository: articleRepository,
		now:               now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	createdArticle, err := s.articleRepository.Create(ctx, article.CreateArticleInput{
		Title:     input.Title,
		Body:      input.Body,
		ImageURL:  input.ImageURL,
		Date:      input.Date,
		CreatedAt: s.now(),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create new article.",
			logging.Entry("title", input.Title),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "New article has been created.", logging.Entry("articleID", createdArticle.ID))
	return Result{Article: createdArticle}, nil
}
