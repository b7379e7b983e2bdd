package user

import "context"

// PasswordResetToken is an opaque random string. A token together with
// its expiration timestamp forms the user's reset window; redeeming the
// token clears both fields, which is what makes it single-use.
type PasswordResetToken string

type PasswordResetTokenGenerator interface {
	GenerateToken() (PasswordResetToken, error)
}

type PasswordResetTokenSender interface {
	SendToken(ctx context.Context, user User, token PasswordResetToken) error
}
