package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satriawidana/go-auth-service/internal/domain/valueobject"
)

func newTestAuthUser(t *testing.T, confirmed, blocked bool) *AuthUser {
	t.Helper()
	email, err := valueobject.NewEmail("user@example.com")
	require.NoError(t, err)
	hash, err := valueobject.NewPasswordHash("some-hash")
	require.NoError(t, err)
	return NewAuthUser("id-1", email, "user1", hash, confirmed, blocked, time.Now().UTC())
}

func TestAuthUserIsActive(t *testing.T) {
	cases := []struct {
		name      string
		confirmed bool
		blocked   bool
		active    bool
	}{
		{"confirmed and not blocked", true, false, true},
		{"unconfirmed", false, false, false},
		{"blocked", true, true, false},
		{"unconfirmed and blocked", false, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := newTestAuthUser(t, tc.confirmed, tc.blocked)
			assert.Equal(t, tc.active, u.IsActive())
		})
	}
}

func TestAuthUserStateTransitions(t *testing.T) {
	u := newTestAuthUser(t, false, false)
	assert.False(t, u.IsActive())

	u.ConfirmAccount()
	assert.True(t, u.IsActive())

	u.BlockAccount()
	assert.False(t, u.IsActive())

	u.UnblockAccount()
	assert.True(t, u.IsActive())
}

func TestAuthUserUpdatePassword(t *testing.T) {
	u := newTestAuthUser(t, true, false)
	newHash, err := valueobject.NewPasswordHash("rotated-hash")
	require.NoError(t, err)

	u.UpdatePassword(newHash)
	assert.Equal(t, "rotated-hash", u.Password.Value())
}

func TestUserUpdateProfile(t *testing.T) {
	u := &User{ID: "id-1", Username: "old", FirstName: "First", LastName: "Last"}

	t.Run("empty fields leave values unchanged", func(t *testing.T) {
		u.UpdateProfile("", "", "")
		assert.Equal(t, "old", u.Username)
		assert.Equal(t, "First", u.FirstName)
		assert.Equal(t, "Last", u.LastName)
	})

	t.Run("non-empty fields are merged", func(t *testing.T) {
		u.UpdateProfile("newname", "", "Other")
		assert.Equal(t, "newname", u.Username)
		assert.Equal(t, "First", u.FirstName)
		assert.Equal(t, "Other", u.LastName)
	})
}
