package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/devconnector/backend/internal/service"
	"github.com/pageza/devconnector/backend/internal/types"
	"github.com/pageza/devconnector/backend/internal/validation"
)

// AuthHandler serves login and the current-user lookup
type AuthHandler struct {
	auth service.IAuthService
	log  *slog.Logger
}

func NewAuthHandler(auth service.IAuthService, log *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

// LoginValidation lists the checks applied to POST /api/auth
func LoginValidation() gin.HandlerFunc {
	return validation.Body(
		validation.Check("email", "Please include a valid email").IsEmail(),
		validation.Check("password", "Password is required").Exists(),
	)
}

// GetCurrentUser returns the authenticated user without the password hash
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := currentUser(c, h.log)
	if !ok {
		return
	}

	user, err := h.auth.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Login exchanges email and password for a token
func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if !bindBody(c, &req) {
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, types.TokenResponse{Token: token})
}
