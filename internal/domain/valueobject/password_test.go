package valueobject

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaintextPassword(t *testing.T) {
	t.Run("accepts minimum length", func(t *testing.T) {
		p, err := NewPlaintextPassword("12345678")
		require.NoError(t, err)
		assert.Equal(t, "12345678", p.Value())
	})

	t.Run("empty is required error", func(t *testing.T) {
		_, err := NewPlaintextPassword("")
		assert.ErrorIs(t, err, ErrPasswordRequired)
	})

	t.Run("short is too-short error", func(t *testing.T) {
		_, err := NewPlaintextPassword("1234567")
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("string form never exposes the value", func(t *testing.T) {
		p, err := NewPlaintextPassword("supersecret")
		require.NoError(t, err)
		assert.Equal(t, "********", p.String())
		assert.NotContains(t, fmt.Sprintf("%v", p), "supersecret")
	})
}

func TestPlaintextPasswordIsStrong(t *testing.T) {
	cases := []struct {
		pwd    string
		strong bool
	}{
		{"Abcdef1!", true},
		{"P@ssw0rdX", true},
		{"abcdefg1!", false}, // no upper
		{"ABCDEFG1!", false}, // no lower
		{"Abcdefgh!", false}, // no digit
		{"Abcdefg12", false}, // no special
	}
	for _, tc := range cases {
		p, err := NewPlaintextPassword(tc.pwd)
		require.NoError(t, err)
		assert.Equal(t, tc.strong, p.IsStrong(), "password %q", tc.pwd)
	}
}

func TestNewPasswordHash(t *testing.T) {
	t.Run("wraps any non-empty value", func(t *testing.T) {
		h, err := NewPasswordHash("$argon2id$v=19$m=65536,t=1,p=4$c$d")
		require.NoError(t, err)
		assert.NotEmpty(t, h.Value())
	})

	t.Run("empty is rejected", func(t *testing.T) {
		_, err := NewPasswordHash("")
		assert.ErrorIs(t, err, ErrPasswordHashEmpty)
	})

	t.Run("equality is exact", func(t *testing.T) {
		a, _ := NewPasswordHash("hash-a")
		b, _ := NewPasswordHash("hash-a")
		c, _ := NewPasswordHash("hash-b")
		assert.True(t, a.Equals(b))
		assert.False(t, a.Equals(c))
	})
}
