package passwordresettoken

import (
	"crypto/rand"
	"encoding/hex"
	"io"
	"mapacademy/internal/core/domain/user"
)

// Tokens are 32 bytes of cryptographically secure randomness, hex
// encoded to a 64 character string. Uniqueness is probabilistic, there
// is no check against previously issued tokens.
const tokenByteCount = 32

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) GenerateToken() (user.PasswordResetToken, error) {
	buf := make([]byte, tokenByteCount)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", err
	}
	return user.PasswordResetToken(hex.EncodeToString(buf)), nil
}
