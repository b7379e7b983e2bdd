package response

import (
	"time"

	"mapacademy/internal/core/domain/user"
)

// User deliberately omits the password hash and the reset token pair.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) FromDomainUser(du user.User) {
	u.ID = int64(du.ID)
	u.Email = string(du.Email)
	u.CreatedAt = du.CreatedAt
}
