package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/satriawidana/go-auth-service/internal/domain/entity"
	repo "github.com/satriawidana/go-auth-service/internal/domain/repository"
	"github.com/satriawidana/go-auth-service/internal/domain/service"
	"github.com/satriawidana/go-auth-service/internal/domain/valueobject"
	"github.com/satriawidana/go-auth-service/pkg/helpers"
	"github.com/satriawidana/go-auth-service/pkg/mailer"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrAccountNotActive      = errors.New("account is not active")
	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrUsernameAlreadyExists = errors.New("username already taken")
	ErrUserNotFound          = errors.New("user not found")
)

// AuthService orchestrates the three credential state transitions: register,
// login, logout.
type AuthService struct {
	Repo      repo.AuthUserRepository
	Tokens    *TokenService
	Blacklist service.TokenBlacklist
	Pub       *helpers.RabbitPublisher
	Logger    *logrus.Logger

	// MailEnabled gates the welcome email publish on registration.
	MailEnabled bool
}

func NewAuthService(r repo.AuthUserRepository, tokens *TokenService, bl service.TokenBlacklist, pub *helpers.RabbitPublisher, logger *logrus.Logger, mailEnabled bool) *AuthService {
	return &AuthService{Repo: r, Tokens: tokens, Blacklist: bl, Pub: pub, Logger: logger, MailEnabled: mailEnabled}
}

// UserProjection is the public view of an account; it never carries the hash.
type UserProjection struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

type LoginResult struct {
	Token       string
	TokenExpiry time.Time
	User        UserProjection
}

// Login authenticates by email or username plus password.
// The active check runs before the password compare: a correct password
// against a blocked account must yield ErrAccountNotActive, not a hint that
// the password was right.
func (s *AuthService) Login(ctx context.Context, emailOrUsername, password string) (*LoginResult, error) {
	var (
		u   *entity.AuthUser
		err error
	)
	if valueobject.IsEmailFormat(emailOrUsername) {
		email, vErr := valueobject.NewEmail(emailOrUsername)
		if vErr != nil {
			return nil, ErrInvalidCredentials
		}
		u, err = s.Repo.GetByEmail(ctx, email)
	} else {
		u, err = s.Repo.GetByUsername(ctx, emailOrUsername)
	}
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}

	if !u.IsActive() {
		return nil, ErrAccountNotActive
	}

	if !helpers.ComparePassword(password, u.Password.Value()) {
		return nil, ErrInvalidCredentials
	}

	token, exp, err := s.Tokens.GenerateToken(u)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return nil, err
	}

	return &LoginResult{
		Token:       token,
		TokenExpiry: exp,
		User:        UserProjection{ID: u.ID, Email: u.Email.Value(), Username: u.Username},
	}, nil
}

type RegisterInput struct {
	Email    string
	Username string
	Password string
	// Accepted for API compatibility; the profile subsystem owns these,
	// the auth aggregate does not persist them.
	FirstName string
	LastName  string
}

type RegisteredUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Confirmed bool   `json:"confirmed"`
}

type RegisterResult struct {
	User RegisteredUser
}

// Register creates a new account. The email existence check runs first, so a
// request with both a taken email and a taken username reports the email
// conflict. The storage unique constraints backstop the check-then-act race.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	email, err := valueobject.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	plain, err := valueobject.NewPlaintextPassword(in.Password)
	if err != nil {
		return nil, err
	}

	if existing, err := s.Repo.GetByEmail(ctx, email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrEmailAlreadyExists
	}
	if existing, err := s.Repo.GetByUsername(ctx, in.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrUsernameAlreadyExists
	}

	hashed, err := helpers.HashPassword(plain.Value())
	if err != nil {
		return nil, err
	}
	hash, err := valueobject.NewPasswordHash(hashed)
	if err != nil {
		return nil, err
	}

	// Accounts start confirmed; an out-of-band confirmation flow would flip
	// this to false and gate IsActive on a confirmation token.
	u := entity.NewAuthUser(uuid.NewString(), email, in.Username, hash, true, false, time.Now().UTC())

	if err := s.Repo.Save(ctx, u); err != nil {
		switch {
		case errors.Is(err, repo.ErrDuplicateEmail):
			return nil, ErrEmailAlreadyExists
		case errors.Is(err, repo.ErrDuplicateUsername):
			return nil, ErrUsernameAlreadyExists
		}
		return nil, err
	}

	s.publishWelcomeEmail(ctx, u)

	return &RegisterResult{User: RegisteredUser{
		ID:        u.ID,
		Email:     u.Email.Value(),
		Username:  u.Username,
		Confirmed: u.Confirmed,
	}}, nil
}

type LogoutResult struct {
	Success bool `json:"success"`
}

// Logout revokes the token for its remaining lifetime. It never fails from
// the caller's perspective: no token is a no-op, and a blacklist error is
// logged but swallowed.
func (s *AuthService) Logout(ctx context.Context, token string) LogoutResult {
	if token == "" {
		return LogoutResult{Success: true}
	}
	if s.Blacklist != nil {
		ttl := s.Tokens.RemainingTTL(token)
		if err := s.Blacklist.Add(ctx, token, ttl); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("blacklist add failed")
		}
	}
	return LogoutResult{Success: true}
}

func (s *AuthService) publishWelcomeEmail(ctx context.Context, u *entity.AuthUser) {
	if s.Pub == nil || !s.MailEnabled {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email.Value(),
		Template: "welcome",
		Data: map[string]any{
			"Username": u.Username,
			"Email":    u.Email.Value(),
		},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("welcome email publish failed")
	}
}
