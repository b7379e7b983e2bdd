package getarticle

import (
	"context"
	"errors"
	"mapacademy/internal/core/domain/article"
	e "mapacademy/internal/core/domain/errors"
	"mapacademy/internal/core/domain/logging"
	"mapacademy/internal/core/services"
)

type Input struct {
	ArticleID article.ID
}

type Result struct {
	Article article.Article
}

type service struct {
	log               logging.Logger
	articleRepository article.ArticleRepository
}

func New(
	log logging.Logger,
	articleRepository article.ArticleRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if articleRepository == nil {
		panic(e.NewNilArgumentError("articleRepository"))
	}
	return &service{
		log:               log,
		articleRepository: articleRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	a, err := s.articleRepository.GetByID(ctx, input.ArticleID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, article.ErrArticleDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get article.",
			logging.Entry("articleID", input.ArticleID),
			logging.Entry("err", err),
		)
		return result, err
	}
	return Result{Article: a}, nil
}
