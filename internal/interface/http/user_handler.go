package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/satriawidana/go-auth-service/internal/application"
	"github.com/satriawidana/go-auth-service/internal/domain/entity"
	"github.com/satriawidana/go-auth-service/internal/domain/valueobject"
	"github.com/satriawidana/go-auth-service/internal/interface/middleware"
	"github.com/satriawidana/go-auth-service/pkg/response"
	"github.com/satriawidana/go-auth-service/pkg/validation"
)

// UserHandler exposes the profile subsystem: own-profile CRUD plus the
// guarded admin endpoints.
type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type updateProfileRequest struct {
	Username  string `json:"username" binding:"omitempty,min=3,max=32"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type createUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Username  string `json:"username" binding:"required,min=3,max=32"`
	Password  string `json:"password" binding:"required,pwd"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func profileView(u *entity.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"email":      u.Email,
		"username":   u.Username,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"confirmed":  u.Confirmed,
		"created_at": u.CreatedAt,
		"updated_at": u.UpdatedAt,
	}
}

// GetProfile GET /api/users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		resp := response.Error[any](c, http.StatusNotFound, "user not found", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, profileView(u), "profile", nil)
	c.JSON(resp.Status, resp)
}

// UpdateProfile PATCH /api/users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}

	h.Logger.WithField("user_id", uid).Info("profile update attempt")

	u, err := h.Svc.UpdateProfile(c.Request.Context(), uid, application.UpdateProfileInput{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		resp := userError(c, err)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, profileView(u), "profile updated", nil)
	c.JSON(resp.Status, resp)
}

// DeleteAccount DELETE /api/users/me
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	h.Logger.WithField("user_id", uid).Warn("account deletion attempt")

	if err := h.Svc.DeleteAccount(c.Request.Context(), uid); err != nil {
		resp := userError(c, err)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "account deleted", nil)
	c.JSON(resp.Status, resp)
}

// CreateUser POST /api/users (guarded admin endpoint)
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}

	u, err := h.Svc.CreateUser(c.Request.Context(), application.CreateUserInput{
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
	resp := response.Success(c, http.StatusCreated, profileView(u), "user created", nil)
	c.JSON(resp.Status, resp)
}

// GetAllUsers GET /api/users (guarded admin endpoint)
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.Svc.GetAllUsers(c.Request.Context())
	if err != nil {
		resp := response.Error[any](c, http.StatusInternalServerError, "failed to list users", nil)
		c.JSON(resp.Status, resp)
		return
	}
	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, profileView(u))
	}
	resp := response.Success(c, http.StatusOK, out, "users", gin.H{"count": len(out)})
	c.JSON(resp.Status, resp)
}

// Search GET /api/users/search?q=&size=
func (h *UserHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		resp := response.Error[any](c, http.StatusBadRequest, "missing query", nil)
		c.JSON(resp.Status, resp)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.SearchUsers(c.Request.Context(), q, size)
	if err != nil {
		resp := response.Error[any](c, http.StatusInternalServerError, "search failed", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, hits, "search results", gin.H{"count": len(hits)})
	c.JSON(resp.Status, resp)
}

func userError(c *gin.Context, err error) response.APIResponse[any] {
	switch {
	case errors.Is(err, application.ErrUserNotFound):
		return response.Error[any](c, http.StatusNotFound, "user not found", nil)
	case errors.Is(err, application.ErrEmailAlreadyExists):
		return response.Error[any](c, http.StatusConflict, "email already registered", nil)
	case errors.Is(err, application.ErrUsernameAlreadyExists):
		return response.Error[any](c, http.StatusConflict, "username already taken", nil)
	case errors.Is(err, valueobject.ErrEmailRequired),
		errors.Is(err, valueobject.ErrEmailFormat),
		errors.Is(err, valueobject.ErrPasswordRequired),
		errors.Is(err, valueobject.ErrPasswordTooShort):
		return response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	}
	return response.Error[any](c, http.StatusInternalServerError, "request failed", nil)
}
