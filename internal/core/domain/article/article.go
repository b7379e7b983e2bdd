package article

import (
	c "mapacademy/internal/core/domain/common"
	"time"
)

type ID int64

type Article struct {
	ID        ID
	Title     string
	Body      string
	ImageURL  c.Optional[string]
	Date      string
	CreatedAt time.Time
}
