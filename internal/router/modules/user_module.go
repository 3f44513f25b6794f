package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/satriawidana/go-auth-service/internal/application"
	"github.com/satriawidana/go-auth-service/internal/container"
	handlers "github.com/satriawidana/go-auth-service/internal/interface/http"
	"github.com/satriawidana/go-auth-service/internal/interface/middleware"
)

// UserModule wires the profile endpoints. Everything here requires a valid
// session token.
type UserModule struct {
	Handler    *handlers.UserHandler
	Tokens     *application.TokenService
	CookieName string
}

func NewUserModule(h *handlers.UserHandler, tokens *application.TokenService, cookieName string) *UserModule {
	return &UserModule{Handler: h, Tokens: tokens, CookieName: cookieName}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Tokens, m.CookieName))
	// Softer limits on authenticated traffic
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.GET("/users/me", m.Handler.GetProfile)
		auth.PATCH("/users/me", m.Handler.UpdateProfile)
		auth.DELETE("/users/me", m.Handler.DeleteAccount)

		auth.POST("/users", m.Handler.CreateUser)
		auth.GET("/users", m.Handler.GetAllUsers)
		// Search users via Elasticsearch
		auth.GET("/users/search", m.Handler.Search)
	}
}
