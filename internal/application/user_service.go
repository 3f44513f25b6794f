package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/satriawidana/go-auth-service/internal/domain/entity"
	repo "github.com/satriawidana/go-auth-service/internal/domain/repository"
	"github.com/satriawidana/go-auth-service/internal/domain/valueobject"
	"github.com/satriawidana/go-auth-service/pkg/helpers"
)

// UserService handles the profile side of accounts: read, partial update,
// delete, admin create/list, and search via Elasticsearch.
type UserService struct {
	Repo         repo.UserRepository
	Logger       *logrus.Logger
	ES           *elasticsearch.Client
	ESUsersIndex string
}

func NewUserService(r repo.UserRepository, logger *logrus.Logger, es *elasticsearch.Client, esUsersIndex string) *UserService {
	return &UserService{Repo: r, Logger: logger, ES: es, ESUsersIndex: esUsersIndex}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

type UpdateProfileInput struct {
	Username  string
	FirstName string
	LastName  string
}

// UpdateProfile merges the provided fields into the profile. A username
// change re-checks uniqueness before writing; the storage constraint still
// backstops the race.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}

	if in.Username != "" && in.Username != u.Username {
		existing, err := s.Repo.GetByUsername(ctx, in.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != u.ID {
			return nil, ErrUsernameAlreadyExists
		}
	}

	u.UpdateProfile(in.Username, in.FirstName, in.LastName)
	if err := s.Repo.Update(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateUsername) {
			return nil, ErrUsernameAlreadyExists
		}
		return nil, err
	}

	// Index latest profile to Elasticsearch
	_ = s.indexUser(ctx, u)
	return u, nil
}

func (s *UserService) DeleteAccount(ctx context.Context, userID string) error {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return ErrUserNotFound
	}
	if err := s.Repo.Delete(ctx, userID); err != nil {
		return err
	}
	s.deleteUserIndex(ctx, userID)
	return nil
}

type CreateUserInput struct {
	Email     string
	Username  string
	Password  string
	FirstName string
	LastName  string
}

// CreateUser is the admin path: same uniqueness rules as registration, but
// the created profile is returned directly.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	email, err := valueobject.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	plain, err := valueobject.NewPlaintextPassword(in.Password)
	if err != nil {
		return nil, err
	}

	if existing, err := s.Repo.GetByEmail(ctx, email.Normalize()); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrEmailAlreadyExists
	}
	if existing, err := s.Repo.GetByUsername(ctx, in.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrUsernameAlreadyExists
	}

	hash, err := helpers.HashPassword(plain.Value())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u := &entity.User{
		ID:        uuid.NewString(),
		Email:     email.Value(),
		Username:  in.Username,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Confirmed: true,
		Blocked:   false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, u, hash); err != nil {
		switch {
		case errors.Is(err, repo.ErrDuplicateEmail):
			return nil, ErrEmailAlreadyExists
		case errors.Is(err, repo.ErrDuplicateUsername):
			return nil, ErrUsernameAlreadyExists
		}
		return nil, err
	}

	_ = s.indexUser(ctx, u)
	return u, nil
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]*entity.User, error) {
	return s.Repo.List(ctx)
}

// SearchUsers performs a simple multi_match search on email, username and names.
func (s *UserService) SearchUsers(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESUsersIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"email^2", "username^2", "first_name", "last_name"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESUsersIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

func (s *UserService) indexUser(ctx context.Context, u *entity.User) error {
	if s.ES == nil || s.ESUsersIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":         u.ID,
		"email":      u.Email,
		"username":   u.Username,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"created_at": u.CreatedAt.Format(time.RFC3339Nano),
		"updated_at": u.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESUsersIndex, DocumentID: u.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("user_id", u.ID).Warn("es index response error")
	}
	return nil
}

func (s *UserService) deleteUserIndex(ctx context.Context, userID string) {
	if s.ES == nil || s.ESUsersIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESUsersIndex, DocumentID: userID}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}
