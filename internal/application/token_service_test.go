package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyToken(t *testing.T) {
	ctx := context.Background()

	t.Run("valid token resolves to its payload", func(t *testing.T) {
		auth, tokens, r, _ := newTestServices(t)
		u := seedUser(t, r, "user@example.com", "user1", "Password1!", true, false)
		res, err := auth.Login(ctx, "user1", "Password1!")
		require.NoError(t, err)

		payload, err := tokens.VerifyToken(ctx, res.Token)
		require.NoError(t, err)
		assert.Equal(t, u.ID, payload.Sub())
		assert.Equal(t, "user@example.com", payload.Email())
		assert.Equal(t, "user1", payload.Username())

		exp, ok := payload.Exp()
		require.True(t, ok)
		assert.Greater(t, exp, time.Now().Unix())
	})

	t.Run("garbage token", func(t *testing.T) {
		_, tokens, _, _ := newTestServices(t)
		_, err := tokens.VerifyToken(ctx, "garbage")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("revoked token", func(t *testing.T) {
		auth, tokens, r, _ := newTestServices(t)
		seedUser(t, r, "user@example.com", "user1", "Password1!", true, false)
		res, err := auth.Login(ctx, "user1", "Password1!")
		require.NoError(t, err)

		auth.Logout(ctx, res.Token)

		_, err = tokens.VerifyToken(ctx, res.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("blacklist outage denies instead of accepting", func(t *testing.T) {
		auth, tokens, r, bl := newTestServices(t)
		seedUser(t, r, "user@example.com", "user1", "Password1!", true, false)
		res, err := auth.Login(ctx, "user1", "Password1!")
		require.NoError(t, err)

		bl.containsErr = errors.New("redis down")

		_, err = tokens.VerifyToken(ctx, res.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token for a deleted user is invalid", func(t *testing.T) {
		auth, tokens, r, _ := newTestServices(t)
		u := seedUser(t, r, "user@example.com", "user1", "Password1!", true, false)
		res, err := auth.Login(ctx, "user1", "Password1!")
		require.NoError(t, err)

		require.NoError(t, r.Delete(ctx, u.ID))

		_, err = tokens.VerifyToken(ctx, res.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestRemainingTTL(t *testing.T) {
	ctx := context.Background()
	auth, tokens, r, _ := newTestServices(t)
	seedUser(t, r, "user@example.com", "user1", "Password1!", true, false)
	res, err := auth.Login(ctx, "user1", "Password1!")
	require.NoError(t, err)

	t.Run("fresh token keeps close to the full TTL", func(t *testing.T) {
		ttl := tokens.RemainingTTL(res.Token)
		assert.Greater(t, ttl, 55*time.Minute)
		assert.LessOrEqual(t, ttl, time.Hour)
	})

	t.Run("unparseable token falls back to the default TTL", func(t *testing.T) {
		assert.Equal(t, tokens.JWT.TTL, tokens.RemainingTTL("garbage"))
	})
}
