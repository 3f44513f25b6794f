package entity

import (
	"time"

	"github.com/satriawidana/go-auth-service/internal/domain/valueobject"
)

// AuthUser is the aggregate root for the authentication domain. It holds the
// credential side of an account; profile fields live on User.
type AuthUser struct {
	ID        string
	Email     valueobject.Email
	Username  string
	Password  valueobject.PasswordHash
	Confirmed bool
	Blocked   bool
	CreatedAt time.Time
}

func NewAuthUser(id string, email valueobject.Email, username string, password valueobject.PasswordHash, confirmed, blocked bool, createdAt time.Time) *AuthUser {
	return &AuthUser{
		ID:        id,
		Email:     email,
		Username:  username,
		Password:  password,
		Confirmed: confirmed,
		Blocked:   blocked,
		CreatedAt: createdAt,
	}
}

// IsActive reports whether the account may authenticate.
func (u *AuthUser) IsActive() bool {
	return u.Confirmed && !u.Blocked
}

func (u *AuthUser) ConfirmAccount() {
	u.Confirmed = true
}

func (u *AuthUser) BlockAccount() {
	u.Blocked = true
}

func (u *AuthUser) UnblockAccount() {
	u.Blocked = false
}

// UpdatePassword swaps in a new hash, e.g. after a rotation.
func (u *AuthUser) UpdatePassword(hash valueobject.PasswordHash) {
	u.Password = hash
}
