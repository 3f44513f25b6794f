package valueobject

import (
	"errors"
	"strings"
)

var (
	ErrPayloadSubRequired      = errors.New("jwt payload sub must be a non-empty string")
	ErrPayloadEmailRequired    = errors.New("jwt payload email must be a non-empty string")
	ErrPayloadUsernameRequired = errors.New("jwt payload username must be a non-empty string")
	ErrPayloadIatNegative      = errors.New("jwt payload iat must not be negative")
	ErrPayloadExpNegative      = errors.New("jwt payload exp must not be negative")
	ErrPayloadExpBeforeIat     = errors.New("jwt payload exp must be after iat")
)

// JwtPayload is the canonical claim set carried by every session token:
// sub (user id), email, username, plus optional iat/exp unix timestamps.
type JwtPayload struct {
	sub      string
	email    string
	username string
	iat      int64
	exp      int64
	hasIat   bool
	hasExp   bool
}

func NewJwtPayload(sub, email, username string) (JwtPayload, error) {
	p := JwtPayload{sub: sub, email: email, username: username}
	if err := p.validate(); err != nil {
		return JwtPayload{}, err
	}
	return p, nil
}

// NewJwtPayloadWithTimes builds a payload carrying iat/exp claims.
// exp must be strictly after iat; an equal pair is a token that was
// expired the moment it was issued.
func NewJwtPayloadWithTimes(sub, email, username string, iat, exp int64) (JwtPayload, error) {
	p := JwtPayload{sub: sub, email: email, username: username, iat: iat, exp: exp, hasIat: true, hasExp: true}
	if err := p.validate(); err != nil {
		return JwtPayload{}, err
	}
	return p, nil
}

// JwtPayloadFromClaims rebuilds a payload from a decoded claim map, with the
// same validation as direct construction. Numeric claims arrive as float64
// after JSON decoding.
func JwtPayloadFromClaims(claims map[string]any) (JwtPayload, error) {
	p := JwtPayload{
		sub:      stringClaim(claims, "sub"),
		email:    stringClaim(claims, "email"),
		username: stringClaim(claims, "username"),
	}
	if v, ok := numericClaim(claims, "iat"); ok {
		p.iat = v
		p.hasIat = true
	}
	if v, ok := numericClaim(claims, "exp"); ok {
		p.exp = v
		p.hasExp = true
	}
	if err := p.validate(); err != nil {
		return JwtPayload{}, err
	}
	return p, nil
}

func (p JwtPayload) validate() error {
	if strings.TrimSpace(p.sub) == "" {
		return ErrPayloadSubRequired
	}
	if strings.TrimSpace(p.email) == "" {
		return ErrPayloadEmailRequired
	}
	if strings.TrimSpace(p.username) == "" {
		return ErrPayloadUsernameRequired
	}
	if p.hasIat && p.iat < 0 {
		return ErrPayloadIatNegative
	}
	if p.hasExp && p.exp < 0 {
		return ErrPayloadExpNegative
	}
	if p.hasIat && p.hasExp && p.exp <= p.iat {
		return ErrPayloadExpBeforeIat
	}
	return nil
}

func (p JwtPayload) Sub() string      { return p.sub }
func (p JwtPayload) Email() string    { return p.email }
func (p JwtPayload) Username() string { return p.username }

func (p JwtPayload) Iat() (int64, bool) { return p.iat, p.hasIat }
func (p JwtPayload) Exp() (int64, bool) { return p.exp, p.hasExp }

func stringClaim(claims map[string]any, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

func numericClaim(claims map[string]any, key string) (int64, bool) {
	switch v := claims[key].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	}
	return 0, false
}
