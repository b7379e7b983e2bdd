package article

import (
	"context"
	"fmt"
	"sync"
)

type FakeArticleRepository struct {
	Articles    []Article
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeArticleRepository() *FakeArticleRepository {
	return &FakeArticleRepository{Articles: make([]Article, 0, 10)}
}

func (r *FakeArticleRepository) Create(ctx context.Context, input CreateArticleInput) (a Article, err error) {
	if r.ReturnError {
		return a, fmt.Errorf("could not create article %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, a := range r.Articles {
		maxID = a.ID
	}
	a = Article{
		ID:        maxID + 1,
		Title:     input.Title,
		Body:      input.Body,
		ImageURL:  input.ImageURL,
		Date:      input.Date,
		CreatedAt: input.CreatedAt,
	}
	r.Articles = append(r.Articles, a)
	return a, nil
}

func (r *FakeArticleRepository) GetByID(ctx context.Context, id ID) (a Article, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, a := range r.Articles {
		if a.ID == id {
			return a, nil
		}
	}
	return a, ErrArticleDoesNotExist
}

func (r *FakeArticleRepository) List(ctx context.Context) ([]Article, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list articles")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	articles := make([]Article, len(r.Articles))
	copy(articles, r.Articles)
	return articles, nil
}
