package passwordresettoken

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	g := NewGenerator()

	token, err := g.GenerateToken()
	require.NoError(t, err)
	require.Len(t, string(token), 64)

	_, err = hex.DecodeString(string(token))
	require.NoError(t, err)
}

func TestGeneratedTokensDiffer(t *testing.T) {
	g := NewGenerator()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		token, err := g.GenerateToken()
		require.NoError(t, err)
		if _, ok := seen[string(token)]; ok {
			t.Fatalf("token generated twice: %s", token)
		}
		seen[string(token)] = struct{}{}
	}
}
