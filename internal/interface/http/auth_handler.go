package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/satriawidana/go-auth-service/internal/application"
	"github.com/satriawidana/go-auth-service/internal/interface/middleware"
	"github.com/satriawidana/go-auth-service/pkg/helpers"
	"github.com/satriawidana/go-auth-service/pkg/response"
	"github.com/satriawidana/go-auth-service/pkg/validation"
)

// AuthHandler exposes register, login and logout over HTTP and owns the
// session cookie.
type AuthHandler struct {
	Svc     *application.AuthService
	Logger  *logrus.Logger
	Cookies *helpers.Manager
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger, cookies *helpers.Manager) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger, Cookies: cookies}
}

type registerRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Username  string `json:"username" binding:"required,min=3,max=32"`
	Password  string `json:"password" binding:"required,pwd"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type loginRequest struct {
	EmailOrUsername string `json:"email_or_username" binding:"required"`
	Password        string `json:"password" binding:"required"`
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}

	h.Logger.WithFields(logrus.Fields{"email": req.Email, "username": req.Username}).Info("registration attempt")

	res, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		resp := userError(c, err)
		c.JSON(resp.Status, resp)
		return
	}

	h.Logger.WithFields(logrus.Fields{"user_id": res.User.ID, "email": req.Email}).Info("registration successful")
	resp := response.Success(c, http.StatusCreated, gin.H{"user": res.User}, "registered", nil)
	c.JSON(resp.Status, resp)
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}

	h.Logger.WithField("identifier", req.EmailOrUsername).Info("login attempt")

	res, err := h.Svc.Login(c.Request.Context(), req.EmailOrUsername, req.Password)
	if err != nil {
		// The client sees one message for every auth failure; the log keeps
		// the real reason.
		h.Logger.WithError(err).WithField("identifier", req.EmailOrUsername).Warn("login failed")
		resp := response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
		c.JSON(resp.Status, resp)
		return
	}

	h.Cookies.SetToken(c, res.Token, res.TokenExpiry)
	h.Logger.WithFields(logrus.Fields{"user_id": res.User.ID, "email": res.User.Email}).Info("login successful")
	resp := response.Success(c, http.StatusOK, gin.H{"user": res.User}, "login successful", gin.H{"expires_at": res.TokenExpiry})
	c.JSON(resp.Status, resp)
}

// Logout POST /api/auth/logout (guarded)
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(h.Cookies.Name)
	res := h.Svc.Logout(c.Request.Context(), token)
	h.Cookies.Clear(c)

	h.Logger.WithField("user_id", c.GetString(middleware.CtxUserIDKey)).Info("logout")
	resp := response.Success(c, http.StatusOK, res, "logged out", nil)
	c.JSON(resp.Status, resp)
}
