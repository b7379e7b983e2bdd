package article

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"mapacademy/internal/core/domain/article"
	c "mapacademy/internal/core/domain/common"
	"mapacademy/internal/db"

	"github.com/jackc/pgx/v4"
)

const articleColumns = `id, title, body, image_url, date, created_at`

type PgxArticleRepository struct {
	db db.DBTX
}

func NewPgxRepository(db db.DBTX) *PgxArticleRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxArticleRepository{db: db}
}

func (r *PgxArticleRepository) Create(
	ctx context.Context,
	input article.CreateArticleInput,
) (a article.Article, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO article (title, body, image_url, date, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+articleColumns,
		input.Title,
		input.Body,
		sql.NullString{String: input.ImageURL.Value, Valid: input.ImageURL.IsPresent},
		input.Date,
		input.CreatedAt,
	)
	return scanArticle(row)
}

func (r *PgxArticleRepository) GetByID(ctx context.Context, id article.ID) (a article.Article, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+articleColumns+` FROM article WHERE id = $1`,
		int64(id),
	)
	a, err = scanArticle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return a, article.ErrArticleDoesNotExist
	}
	return a, err
}

func (r *PgxArticleRepository) List(ctx context.Context) ([]article.Article, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+articleColumns+` FROM article ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := make([]article.Article, 0)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return articles, nil
}

func scanArticle(row pgx.Row) (a article.Article, err error) {
	var (
		id        int64
		title     string
		body      string
		imageURL  sql.NullString
		date      string
		createdAt time.Time
	)
	err = row.Scan(&id, &title, &body, &imageURL, &date, &createdAt)
	if err != nil {
		return a, err
	}
	return article.Article{
		ID:        article.ID(id),
		Title:     title,
		Body:      body,
		ImageURL:  c.NewOptional(imageURL.String, imageURL.Valid),
		Date:      date,
		CreatedAt: createdAt,
	}, nil
}
