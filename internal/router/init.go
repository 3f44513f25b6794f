package router

import (
	"github.com/satriawidana/go-auth-service/internal/application"
	"github.com/satriawidana/go-auth-service/internal/container"
	"github.com/satriawidana/go-auth-service/internal/infrastructure/postgres"
	"github.com/satriawidana/go-auth-service/internal/infrastructure/redisstore"
	handlers "github.com/satriawidana/go-auth-service/internal/interface/http"
	"github.com/satriawidana/go-auth-service/internal/router/modules"
	"github.com/satriawidana/go-auth-service/pkg/helpers"
)

// InitModules builds the service graph from the container singletons and
// registers every feature module with the router registry. Called once
// during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	authRepo := postgres.NewAuthUserRepository(container.GetPGPool())
	userRepo := postgres.NewUserRepository(container.GetPGPool())
	blacklist := redisstore.NewTokenBlacklist(container.GetRedis())

	tokens := application.NewTokenService(container.GetJWT(), authRepo, blacklist, logger)
	authSvc := application.NewAuthService(authRepo, tokens, blacklist, container.GetRabbitPub(), logger, cfg.MailSendEnabled)
	userSvc := application.NewUserService(userRepo, logger, container.GetES(), cfg.ESUsersIndex)

	cookies := helpers.NewCookie(cfg.CookieName, cfg.CookieDomain, cfg.CookieSecure())

	authHandler := handlers.NewAuthHandler(authSvc, logger, cookies)
	userHandler := handlers.NewUserHandler(userSvc, logger)

	r.Add(modules.NewAuthModule(authHandler, tokens, cfg.CookieName))
	r.Add(modules.NewUserModule(userHandler, tokens, cfg.CookieName))
}
