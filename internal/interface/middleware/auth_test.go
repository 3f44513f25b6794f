package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satriawidana/go-auth-service/internal/application"
	"github.com/satriawidana/go-auth-service/internal/domain/entity"
	"github.com/satriawidana/go-auth-service/internal/domain/valueobject"
	"github.com/satriawidana/go-auth-service/pkg/helpers"
)

type stubAuthRepo struct {
	user *entity.AuthUser
}

func (s *stubAuthRepo) Save(ctx context.Context, u *entity.AuthUser) error { return nil }
func (s *stubAuthRepo) GetByID(ctx context.Context, id string) (*entity.AuthUser, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, nil
}
func (s *stubAuthRepo) GetByEmail(ctx context.Context, email valueobject.Email) (*entity.AuthUser, error) {
	return nil, nil
}
func (s *stubAuthRepo) GetByUsername(ctx context.Context, username string) (*entity.AuthUser, error) {
	return nil, nil
}
func (s *stubAuthRepo) UpdatePassword(ctx context.Context, id string, hash valueobject.PasswordHash) error {
	return nil
}
func (s *stubAuthRepo) SetBlocked(ctx context.Context, id string, blocked bool) error   { return nil }
func (s *stubAuthRepo) SetConfirmed(ctx context.Context, id string, confirmed bool) error { return nil }
func (s *stubAuthRepo) Delete(ctx context.Context, id string) error                     { return nil }

func newGuardedRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	email, err := valueobject.NewEmail("user@example.com")
	require.NoError(t, err)
	hash, err := valueobject.NewPasswordHash("irrelevant")
	require.NoError(t, err)
	user := entity.NewAuthUser("user-1", email, "user1", hash, true, false, time.Now().UTC())

	jwtMgr := &helpers.JWTManager{Secret: []byte("test-secret"), TTL: time.Hour}
	tokens := application.NewTokenService(jwtMgr, &stubAuthRepo{user: user}, nil, nil)

	token, _, err := jwtMgr.GenerateToken(user.ID, user.Email.Value(), user.Username)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/guarded", Auth(tokens, "auth_token"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.GetString(CtxUserIDKey),
			"email":    c.GetString(CtxUserEmail),
			"username": c.GetString(CtxUsernameKey),
		})
	})
	return r, token
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("no token is rejected", func(t *testing.T) {
		r, _ := newGuardedRouter(t)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "no token provided")
	})

	t.Run("cookie token is accepted", func(t *testing.T) {
		r, token := newGuardedRouter(t)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "user-1")
		assert.Contains(t, w.Body.String(), "user@example.com")
	})

	t.Run("bearer header is accepted when no cookie exists", func(t *testing.T) {
		r, token := newGuardedRouter(t)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("cookie wins over header", func(t *testing.T) {
		r, token := newGuardedRouter(t)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: "bogus-cookie-token"})
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		// The bogus cookie is used and fails verification; the valid header
		// must not rescue the request.
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid token")
	})

	t.Run("malformed authorization header counts as no token", func(t *testing.T) {
		r, token := newGuardedRouter(t)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Token "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "no token provided")
	})

	t.Run("tampered token is rejected", func(t *testing.T) {
		r, token := newGuardedRouter(t)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: token + "x"})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid token")
	})
}
