package repository

import (
	"context"
	"errors"

	"github.com/satriawidana/go-auth-service/internal/domain/entity"
	"github.com/satriawidana/go-auth-service/internal/domain/valueobject"
)

// Storage-level uniqueness violations. The application layer runs its own
// existence checks first for friendlier errors, but those are check-then-act;
// the unique constraints behind these errors are the authoritative guard.
var (
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateUsername = errors.New("username already taken")
)

// AuthUserRepository defines credential-side persistence for accounts.
// Lookups return (nil, nil) when no row matches; errors are reserved for
// store failures.
type AuthUserRepository interface {
	Save(ctx context.Context, u *entity.AuthUser) error
	GetByID(ctx context.Context, id string) (*entity.AuthUser, error)
	GetByEmail(ctx context.Context, email valueobject.Email) (*entity.AuthUser, error)
	GetByUsername(ctx context.Context, username string) (*entity.AuthUser, error)
	UpdatePassword(ctx context.Context, id string, hash valueobject.PasswordHash) error
	SetBlocked(ctx context.Context, id string, blocked bool) error
	SetConfirmed(ctx context.Context, id string, confirmed bool) error
	Delete(ctx context.Context, id string) error
}
