package user

import (
	"fmt"
	c "mapacademy/internal/core/domain/common"
	e "mapacademy/internal/core/domain/errors"
	"time"
)

type ID int64

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type User struct {
	ID           ID
	Email        c.Email
	PasswordHash PasswordHash
	CreatedAt    time.Time

	// Reset window fields. Either both are present (an open window)
	// or both are absent.
	ResetToken          c.Optional[PasswordResetToken]
	ResetTokenExpiresAt c.Optional[time.Time]
}

func (u *User) Validate() error {
	if u.Email == "" {
		return e.NewInvalidStateError(fmt.Sprintf("email is not set for user %d", u.ID))
	}
	if u.PasswordHash == "" {
		return e.NewInvalidStateError(fmt.Sprintf("password hash is not set for user %d", u.ID))
	}
	if u.ResetToken.IsPresent != u.ResetTokenExpiresAt.IsPresent {
		return e.NewInvalidStateError(
			fmt.Sprintf("reset token and its expiration must be set together for user %d", u.ID),
		)
	}
	return nil
}

func (u *User) HasOpenResetWindow(now time.Time) bool {
	return u.ResetToken.IsPresent && now.Before(u.ResetTokenExpiresAt.Value)
}
