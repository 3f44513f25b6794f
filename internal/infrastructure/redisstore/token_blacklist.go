package redisstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/satriawidana/go-auth-service/internal/domain/service"
)

func keyBlacklist(token string) string { return "token:blacklist:" + token }

// TokenBlacklist stores revoked tokens in Redis with a TTL matching the
// token's remaining lifetime, so entries expire together with the tokens
// they revoke.
type TokenBlacklist struct {
	rdb *redis.Client
}

func NewTokenBlacklist(rdb *redis.Client) *TokenBlacklist {
	return &TokenBlacklist{rdb: rdb}
}

func (b *TokenBlacklist) Add(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return b.rdb.Set(ctx, keyBlacklist(token), "1", ttl).Err()
}

func (b *TokenBlacklist) Contains(ctx context.Context, token string) (bool, error) {
	err := b.rdb.Get(ctx, keyBlacklist(token)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

var _ service.TokenBlacklist = (*TokenBlacklist)(nil)
