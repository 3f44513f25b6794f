package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/satriawidana/go-auth-service/internal/domain/entity"
	repo "github.com/satriawidana/go-auth-service/internal/domain/repository"
	"github.com/satriawidana/go-auth-service/internal/domain/service"
	"github.com/satriawidana/go-auth-service/internal/domain/valueobject"
	"github.com/satriawidana/go-auth-service/pkg/helpers"
)

// ErrInvalidToken covers every verification failure: bad signature, expiry,
// malformed payload, revoked token, unknown subject, or a store that could
// not be reached. Callers never learn which one it was.
var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and verifies session tokens. Verification is not a pure
// crypto operation: a token is only valid while its subject still exists, so
// every verify re-resolves the user and consults the revocation list.
type TokenService struct {
	JWT       *helpers.JWTManager
	Repo      repo.AuthUserRepository
	Blacklist service.TokenBlacklist
	Logger    *logrus.Logger
}

func NewTokenService(jwt *helpers.JWTManager, r repo.AuthUserRepository, bl service.TokenBlacklist, logger *logrus.Logger) *TokenService {
	return &TokenService{JWT: jwt, Repo: r, Blacklist: bl, Logger: logger}
}

// GenerateToken signs a session token for the user and returns it with its
// expiry.
func (s *TokenService) GenerateToken(u *entity.AuthUser) (string, time.Time, error) {
	return s.JWT.GenerateToken(u.ID, u.Email.Value(), u.Username)
}

// VerifyToken checks signature and expiry, validates the claim shape,
// rejects revoked tokens, and resolves the subject against the repository.
// Everything fails closed into ErrInvalidToken.
func (s *TokenService) VerifyToken(ctx context.Context, token string) (valueobject.JwtPayload, error) {
	claims, err := s.JWT.ParseToken(token)
	if err != nil {
		return valueobject.JwtPayload{}, ErrInvalidToken
	}

	var iat, exp int64
	if claims.IssuedAt != nil {
		iat = claims.IssuedAt.Unix()
	}
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Unix()
	}
	var payload valueobject.JwtPayload
	if claims.IssuedAt != nil && claims.ExpiresAt != nil {
		payload, err = valueobject.NewJwtPayloadWithTimes(claims.Subject, claims.Email, claims.Username, iat, exp)
	} else {
		payload, err = valueobject.NewJwtPayload(claims.Subject, claims.Email, claims.Username)
	}
	if err != nil {
		return valueobject.JwtPayload{}, ErrInvalidToken
	}

	if s.Blacklist != nil {
		revoked, blErr := s.Blacklist.Contains(ctx, token)
		if blErr != nil {
			// Store unavailable: deny rather than accept a possibly revoked token.
			if s.Logger != nil {
				s.Logger.WithError(blErr).Warn("token blacklist unavailable")
			}
			return valueobject.JwtPayload{}, ErrInvalidToken
		}
		if revoked {
			return valueobject.JwtPayload{}, ErrInvalidToken
		}
	}

	u, err := s.Repo.GetByID(ctx, claims.Subject)
	if err != nil || u == nil {
		// A valid, unexpired token for a deleted user is still invalid.
		return valueobject.JwtPayload{}, ErrInvalidToken
	}

	return payload, nil
}

// RemainingTTL returns how long the token stays valid, for blacklist entries.
// Unparseable tokens get the full default TTL so a revocation is never
// shorter-lived than the token it covers.
func (s *TokenService) RemainingTTL(token string) time.Duration {
	claims, err := s.JWT.ParseToken(token)
	if err != nil || claims.ExpiresAt == nil {
		return s.JWT.TTL
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return time.Minute
	}
	return ttl
}
