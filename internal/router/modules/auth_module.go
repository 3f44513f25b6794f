package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/satriawidana/go-auth-service/internal/application"
	"github.com/satriawidana/go-auth-service/internal/container"
	handlers "github.com/satriawidana/go-auth-service/internal/interface/http"
	"github.com/satriawidana/go-auth-service/internal/interface/middleware"
)

// AuthModule wires the credential endpoints.
// Public: POST /api/auth/register, POST /api/auth/login
// Protected: POST /api/auth/logout
type AuthModule struct {
	Handler    *handlers.AuthHandler
	Tokens     *application.TokenService
	CookieName string
}

func NewAuthModule(h *handlers.AuthHandler, tokens *application.TokenService, cookieName string) *AuthModule {
	return &AuthModule{Handler: h, Tokens: tokens, CookieName: cookieName}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with IP-based rate limits against credential stuffing
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Tokens, m.CookieName))
	{
		auth.POST("/auth/logout", m.Handler.Logout)
	}
}
