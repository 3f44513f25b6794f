package valueobject

import (
	"errors"
	"strings"
)

const MinPasswordLength = 8

var (
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
	ErrPasswordHashEmpty = errors.New("password hash is required")
)

// PlaintextPassword holds a user-supplied password before hashing. It is
// transient: validated at construction, handed to the hasher, never persisted.
type PlaintextPassword struct {
	value string
}

func NewPlaintextPassword(value string) (PlaintextPassword, error) {
	if value == "" {
		return PlaintextPassword{}, ErrPasswordRequired
	}
	if len(value) < MinPasswordLength {
		return PlaintextPassword{}, ErrPasswordTooShort
	}
	return PlaintextPassword{value: value}, nil
}

func (p PlaintextPassword) Value() string { return p.value }

// String always masks; plaintext must never leak into logs or errors.
func (p PlaintextPassword) String() string { return "********" }

// IsStrong reports whether the password mixes upper, lower, digit and a
// special character. Strength is advisory, not part of validity.
func (p PlaintextPassword) IsStrong() bool {
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range p.value {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(`!@#$%^&*(),.?":{}|<>`, r):
			hasSpecial = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSpecial
}

// PasswordHash is the opaque, persisted form of a password. It carries no
// length rules of its own; the hasher owns the encoding.
type PasswordHash struct {
	value string
}

func NewPasswordHash(value string) (PasswordHash, error) {
	if value == "" {
		return PasswordHash{}, ErrPasswordHashEmpty
	}
	return PasswordHash{value: value}, nil
}

func (h PasswordHash) Value() string { return h.value }

func (h PasswordHash) Equals(other PasswordHash) bool {
	return h.value == other.value
}
