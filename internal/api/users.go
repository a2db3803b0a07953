package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/devconnector/backend/internal/service"
	"github.com/pageza/devconnector/backend/internal/types"
	"github.com/pageza/devconnector/backend/internal/validation"
)

// UsersHandler serves account registration
type UsersHandler struct {
	auth service.IAuthService
	log  *slog.Logger
}

func NewUsersHandler(auth service.IAuthService, log *slog.Logger) *UsersHandler {
	return &UsersHandler{auth: auth, log: log}
}

// RegisterValidation lists the checks applied to POST /api/users
func RegisterValidation() gin.HandlerFunc {
	return validation.Body(
		validation.Check("name", "Name is required").NotEmpty(),
		validation.Check("email", "Please include a valid email").IsEmail(),
		validation.Check("password", "Please enter a password with 6 or more characters").IsLength(6),
	)
}

// Register creates an account and answers with a token
func (h *UsersHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if !bindBody(c, &req) {
		return
	}

	token, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, types.TokenResponse{Token: token})
}
