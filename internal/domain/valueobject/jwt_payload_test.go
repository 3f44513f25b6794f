package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJwtPayload(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		p, err := NewJwtPayload("user-1", "user@example.com", "user1")
		require.NoError(t, err)
		assert.Equal(t, "user-1", p.Sub())
		assert.Equal(t, "user@example.com", p.Email())
		assert.Equal(t, "user1", p.Username())

		_, ok := p.Iat()
		assert.False(t, ok)
		_, ok = p.Exp()
		assert.False(t, ok)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := NewJwtPayload("", "e@x.com", "u")
		assert.ErrorIs(t, err, ErrPayloadSubRequired)

		_, err = NewJwtPayload("s", "", "u")
		assert.ErrorIs(t, err, ErrPayloadEmailRequired)

		_, err = NewJwtPayload("s", "e@x.com", "")
		assert.ErrorIs(t, err, ErrPayloadUsernameRequired)
	})

	t.Run("whitespace-only counts as missing", func(t *testing.T) {
		_, err := NewJwtPayload("   ", "e@x.com", "u")
		assert.ErrorIs(t, err, ErrPayloadSubRequired)
	})
}

func TestNewJwtPayloadWithTimes(t *testing.T) {
	t.Run("valid time window", func(t *testing.T) {
		p, err := NewJwtPayloadWithTimes("s", "e@x.com", "u", 100, 200)
		require.NoError(t, err)
		iat, ok := p.Iat()
		require.True(t, ok)
		assert.Equal(t, int64(100), iat)
		exp, ok := p.Exp()
		require.True(t, ok)
		assert.Equal(t, int64(200), exp)
	})

	t.Run("exp equal to iat is rejected", func(t *testing.T) {
		_, err := NewJwtPayloadWithTimes("s", "e@x.com", "u", 100, 100)
		assert.ErrorIs(t, err, ErrPayloadExpBeforeIat)
	})

	t.Run("exp before iat is rejected", func(t *testing.T) {
		_, err := NewJwtPayloadWithTimes("s", "e@x.com", "u", 200, 100)
		assert.ErrorIs(t, err, ErrPayloadExpBeforeIat)
	})

	t.Run("negative timestamps are rejected", func(t *testing.T) {
		_, err := NewJwtPayloadWithTimes("s", "e@x.com", "u", -1, 100)
		assert.ErrorIs(t, err, ErrPayloadIatNegative)
	})
}

func TestJwtPayloadFromClaims(t *testing.T) {
	t.Run("json-decoded claims with float64 timestamps", func(t *testing.T) {
		p, err := JwtPayloadFromClaims(map[string]any{
			"sub":      "user-1",
			"email":    "user@example.com",
			"username": "user1",
			"iat":      float64(100),
			"exp":      float64(200),
		})
		require.NoError(t, err)
		iat, ok := p.Iat()
		require.True(t, ok)
		assert.Equal(t, int64(100), iat)
	})

	t.Run("timestamps are optional", func(t *testing.T) {
		p, err := JwtPayloadFromClaims(map[string]any{
			"sub":      "user-1",
			"email":    "user@example.com",
			"username": "user1",
		})
		require.NoError(t, err)
		_, ok := p.Exp()
		assert.False(t, ok)
	})

	t.Run("non-string sub counts as missing", func(t *testing.T) {
		_, err := JwtPayloadFromClaims(map[string]any{
			"sub":      42,
			"email":    "user@example.com",
			"username": "user1",
		})
		assert.ErrorIs(t, err, ErrPayloadSubRequired)
	})
}
