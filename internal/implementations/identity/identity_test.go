package identity

import (
	"mapacademy/internal/core/domain/user"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const SECRET = "test-secret"

func TestSignedTokenCarriesIDAndEmail(t *testing.T) {
	issuer := NewJWT(SECRET)
	u := user.User{ID: 42, Email: "test@test.test", PasswordHash: "hash"}

	token, err := issuer.Sign(u)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := jwt.Parse(string(token), func(t *jwt.Token) (interface{}, error) {
		return []byte(SECRET), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	require.Equal(t, float64(42), claims["id"])
	require.Equal(t, "test@test.test", claims["email"])
}

func TestSignedTokenHasNoExpiration(t *testing.T) {
	issuer := NewJWT(SECRET)

	token, err := issuer.Sign(user.User{ID: 1, Email: "test@test.test", PasswordHash: "hash"})
	require.NoError(t, err)

	parsed, err := jwt.Parse(string(token), func(t *jwt.Token) (interface{}, error) {
		return []byte(SECRET), nil
	})
	require.NoError(t, err)

	claims := parsed.Claims.(jwt.MapClaims)
	_, hasExp := claims["exp"]
	require.False(t, hasExp)
}

func TestTokenSignedWithDifferentSecretIsRejected(t *testing.T) {
	token, err := NewJWT("other-secret").Sign(user.User{ID: 1, Email: "test@test.test", PasswordHash: "hash"})
	require.NoError(t, err)

	_, err = jwt.Parse(string(token), func(t *jwt.Token) (interface{}, error) {
		return []byte(SECRET), nil
	})
	require.Error(t, err)
}
