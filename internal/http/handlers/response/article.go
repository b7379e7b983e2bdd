package response

import (
	"time"

	"mapacademy/internal/core/domain/article"
)

type Article struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	ImageURL  *string   `json:"image_url,omitempty"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *Article) FromDomainArticle(da article.Article) {
	a.ID = int64(da.ID)
	a.Title = da.Title
	a.Body = da.Body
	if da.ImageURL.IsPresent {
		a.ImageURL = &da.ImageURL.Value
	}
	a.Date = da.Date
	a.CreatedAt = da.CreatedAt
}
