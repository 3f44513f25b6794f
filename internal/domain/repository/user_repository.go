package repository

import (
	"context"

	"github.com/satriawidana/go-auth-service/internal/domain/entity"
)

// UserRepository defines profile-side persistence. It reads and writes the
// same accounts table as AuthUserRepository but never touches the password
// hash.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User, passwordHash string) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, id string) error
}
