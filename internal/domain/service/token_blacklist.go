package service

import (
	"context"
	"time"
)

// TokenBlacklist records revoked session tokens until their natural expiry.
// Verification must treat a blacklisted token exactly like an invalid one.
type TokenBlacklist interface {
	Add(ctx context.Context, token string, ttl time.Duration) error
	Contains(ctx context.Context, token string) (bool, error)
}
