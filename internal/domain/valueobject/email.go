package valueobject

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmailRequired = errors.New("email is required")
	ErrEmailFormat   = errors.New("invalid email format")
)

// emailRegex intentionally stays loose: one @, no whitespace, a dot in the
// domain part. Real validation happens when the address is actually used.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email is an immutable, format-checked email address.
type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	if value == "" {
		return Email{}, ErrEmailRequired
	}
	if !emailRegex.MatchString(value) {
		return Email{}, ErrEmailFormat
	}
	return Email{value: value}, nil
}

// Value returns the address exactly as it was supplied.
func (e Email) Value() string { return e.value }

func (e Email) String() string { return e.value }

// Normalize returns the lowercase form used for storage and lookups.
func (e Email) Normalize() string { return strings.ToLower(e.value) }

// Equals compares case-insensitively; MAIL addresses are case-preserving but
// comparison treats User@x and user@x as the same account.
func (e Email) Equals(other Email) bool {
	return strings.EqualFold(e.value, other.value)
}

// IsEmailFormat reports whether the input looks like an email address.
// Used by login to decide between email and username lookup.
func IsEmailFormat(input string) bool {
	return emailRegex.MatchString(input)
}
