package identity

import (
	"mapacademy/internal/core/domain/user"

	"github.com/golang-jwt/jwt/v5"
)

// JWT signs stateless HS256 identity tokens carrying the user's id and
// email. No expiration claim is set, so issued tokens stay valid until
// the signing secret changes.
type JWT struct {
	secret []byte
}

func NewJWT(secret string) *JWT {
	return &JWT{secret: []byte(secret)}
}

func (i *JWT) Sign(u user.User) (user.AccessToken, error) {
	claims := jwt.MapClaims{
		"id":    int64(u.ID),
		"email": string(u.Email),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", err
	}
	return user.AccessToken(signed), nil
}
