package user

import (
	"context"
	c "mapacademy/internal/core/domain/common"
	"time"
)

type CreateUserInput struct {
	Email        c.Email
	PasswordHash PasswordHash
	CreatedAt    time.Time
}

type SetPasswordResetTokenInput struct {
	UserID    ID
	Token     PasswordResetToken
	ExpiresAt time.Time
}

type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)

	// GetByResetToken and GetByIDAndResetToken match only users whose
	// reset token equals the given one and whose expiration is strictly
	// after now. A missing, consumed and expired token all look the same
	// to callers: ErrUserDoesNotExist.
	GetByResetToken(ctx context.Context, token PasswordResetToken, now time.Time) (User, error)
	GetByIDAndResetToken(ctx context.Context, id ID, token PasswordResetToken, now time.Time) (User, error)

	// SetPasswordResetToken overwrites any previously open reset window.
	SetPasswordResetToken(ctx context.Context, input SetPasswordResetTokenInput) (User, error)

	// UpdatePassword replaces the stored hash and clears both reset
	// window fields in the same write.
	UpdatePassword(ctx context.Context, id ID, passwordHash PasswordHash) error
}
