package article

import (
	"context"
	c "mapacademy/internal/core/domain/common"
	"time"
)

type CreateArticleInput struct {
	Title     string
	Body      string
	ImageURL  c.Optional[string]
	Date      string
	CreatedAt time.Time
}

type ArticleRepository interface {
	Create(ctx context.Context, input CreateArticleInput) (Article, error)
	GetByID(ctx context.Context, id ID) (Article, error)
	List(ctx context.Context) ([]Article, error)
}
