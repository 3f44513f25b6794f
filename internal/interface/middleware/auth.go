package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/satriawidana/go-auth-service/internal/application"
	"github.com/satriawidana/go-auth-service/pkg/response"
)

const (
	CtxUserIDKey   = "userID"
	CtxUserEmail   = "userEmail"
	CtxUsernameKey = "userName"

	bearerPrefix = "Bearer "
)

// Auth is the request authorization gate. It extracts the session token from
// the auth cookie, falling back to an Authorization: Bearer header, verifies
// it through the token service, and attaches the resolved identity to the
// Gin context. Missing token and failed verification are the only two
// rejection shapes visible to clients.
func Auth(tokens *application.TokenService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c, cookieName)
		if token == "" {
			resp := response.Error[any](c, http.StatusUnauthorized, "no token provided", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}

		payload, err := tokens.VerifyToken(c.Request.Context(), token)
		if err != nil {
			resp := response.Error[any](c, http.StatusUnauthorized, "invalid token", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}

		c.Set(CtxUserIDKey, payload.Sub())
		c.Set(CtxUserEmail, payload.Email())
		c.Set(CtxUsernameKey, payload.Username())
		c.Next()
	}
}

// extractToken prefers the cookie; the header is only consulted when the
// cookie is absent. Anything that is not exactly "Bearer <token>" counts as
// no token.
func extractToken(c *gin.Context, cookieName string) string {
	if tok, err := c.Cookie(cookieName); err == nil && tok != "" {
		return tok
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, bearerPrefix) {
		return authHeader[len(bearerPrefix):]
	}
	return ""
}
