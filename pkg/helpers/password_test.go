package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Run("produces phc-encoded argon2id", func(t *testing.T) {
		h, err := HashPassword("correct horse battery staple")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(h, "$argon2id$v=19$m=65536,t=1,p=4$"), "got %q", h)
	})

	t.Run("salts each hash", func(t *testing.T) {
		a, err := HashPassword("same password")
		require.NoError(t, err)
		b, err := HashPassword("same password")
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := HashPassword("")
		assert.Error(t, err)
	})
}

func TestComparePassword(t *testing.T) {
	hash, err := HashPassword("my secret password")
	require.NoError(t, err)

	t.Run("matches the original", func(t *testing.T) {
		assert.True(t, ComparePassword("my secret password", hash))
	})

	t.Run("rejects a different password", func(t *testing.T) {
		assert.False(t, ComparePassword("another password", hash))
	})

	t.Run("malformed hash is a mismatch, not an error", func(t *testing.T) {
		for _, bad := range []string{
			"",
			"not a hash",
			"$argon2id$v=19$m=65536,t=1,p=4$only-four-parts",
			"$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
			"$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$aGFzaA",
			"$argon2id$v=19$m=65536,t=1,p=4$!!!$aGFzaA",
			"$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$!!!",
		} {
			assert.False(t, ComparePassword("my secret password", bad), "hash %q", bad)
		}
	})
}
