package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/satriawidana/go-auth-service/internal/domain/entity"
	"github.com/satriawidana/go-auth-service/internal/domain/repository"
	"github.com/satriawidana/go-auth-service/internal/domain/valueobject"
)

const uniqueViolation = "23505"

// mapUniqueViolation translates a postgres unique-constraint error into the
// matching domain error. Constraint names come from the migration.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return err
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "email"):
		return repository.ErrDuplicateEmail
	case strings.Contains(pgErr.ConstraintName, "username"):
		return repository.ErrDuplicateUsername
	}
	return err
}

// AuthUserRepository is the pgx-backed credential store. Lookups return
// (nil, nil) on no match so callers can distinguish "unknown user" from a
// store failure.
type AuthUserRepository struct {
	pool *pgxpool.Pool
}

func NewAuthUserRepository(pool *pgxpool.Pool) *AuthUserRepository {
	return &AuthUserRepository{pool: pool}
}

func (r *AuthUserRepository) Save(ctx context.Context, u *entity.AuthUser) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, email, username, password_hash, confirmed, blocked, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, u.ID, u.Email.Normalize(), u.Username, u.Password.Value(), u.Confirmed, u.Blocked, u.CreatedAt)
	if err != nil {
		return mapUniqueViolation(err)
	}
	return nil
}

func (r *AuthUserRepository) GetByID(ctx context.Context, id string) (*entity.AuthUser, error) {
	return r.getBy(ctx, `WHERE id = $1`, id)
}

func (r *AuthUserRepository) GetByEmail(ctx context.Context, email valueobject.Email) (*entity.AuthUser, error) {
	return r.getBy(ctx, `WHERE email = $1`, email.Normalize())
}

func (r *AuthUserRepository) GetByUsername(ctx context.Context, username string) (*entity.AuthUser, error) {
	return r.getBy(ctx, `WHERE username = $1`, username)
}

func (r *AuthUserRepository) getBy(ctx context.Context, where string, arg any) (*entity.AuthUser, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, email, username, password_hash, confirmed, blocked, created_at
		FROM users
	`+where, arg)

	var (
		id, emailStr, username, hashStr string
		confirmed, blocked              bool
		u                               entity.AuthUser
	)
	if err := row.Scan(&id, &emailStr, &username, &hashStr, &confirmed, &blocked, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	email, err := valueobject.NewEmail(emailStr)
	if err != nil {
		return nil, err
	}
	hash, err := valueobject.NewPasswordHash(hashStr)
	if err != nil {
		return nil, err
	}

	u.ID = id
	u.Email = email
	u.Username = username
	u.Password = hash
	u.Confirmed = confirmed
	u.Blocked = blocked
	return &u, nil
}

func (r *AuthUserRepository) UpdatePassword(ctx context.Context, id string, hash valueobject.PasswordHash) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2
	`, hash.Value(), id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return errNotFound
	}
	return nil
}

func (r *AuthUserRepository) SetBlocked(ctx context.Context, id string, blocked bool) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users SET blocked = $1, updated_at = now() WHERE id = $2
	`, blocked, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return errNotFound
	}
	return nil
}

func (r *AuthUserRepository) SetConfirmed(ctx context.Context, id string, confirmed bool) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users SET confirmed = $1, updated_at = now() WHERE id = $2
	`, confirmed, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return errNotFound
	}
	return nil
}

func (r *AuthUserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return errNotFound
	}
	return nil
}

var _ repository.AuthUserRepository = (*AuthUserRepository)(nil)
