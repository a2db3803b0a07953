package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/pageza/devconnector/backend/internal/middleware"
	"github.com/pageza/devconnector/backend/internal/service"
	"github.com/pageza/devconnector/backend/internal/validation"
)

const (
	msgNoProfileForUser = "There is no profile for this user"
	msgProfileNotFound  = "Profile not found"
	msgUserNotFound     = "User not found"
	msgNoGitHubProfile  = "No Github profile found"
	msgUserDeleted      = "User deleted"
)

// errorListMessages maps service errors answered with an {"errors":[{"msg"}]} envelope
var errorListMessages = map[error]string{
	service.ErrDuplicateUser:      "User already exists",
	service.ErrInvalidCredentials: "Invalid credentials",
	service.ErrInvalidDate:        "Please provide valid dates",
}

func respondMsg(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"msg": msg})
}

func respondErrors(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"errors": []validation.FieldError{{Msg: msg}}})
}

// respondError translates a service error into its HTTP response. Unknown
// errors are logged and answered with the generic 500.
func respondError(c *gin.Context, log *slog.Logger, err error) {
	for target, msg := range errorListMessages {
		if errors.Is(err, target) {
			respondErrors(c, http.StatusBadRequest, msg)
			return
		}
	}

	switch {
	case errors.Is(err, service.ErrProfileNotFound):
		respondMsg(c, http.StatusBadRequest, msgNoProfileForUser)
	case errors.Is(err, service.ErrUserNotFound):
		respondMsg(c, http.StatusBadRequest, msgUserNotFound)
	case errors.Is(err, service.ErrGitHubProfileNotFound):
		respondMsg(c, http.StatusNotFound, msgNoGitHubProfile)
	default:
		log.Error("request failed",
			"error", err,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
		c.Error(err)
		c.String(http.StatusInternalServerError, middleware.ServerErrorBody)
	}
}

// bindBody decodes the JSON body already read by the validation middleware
func bindBody(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindBodyWith(obj, binding.JSON); err != nil {
		respondErrors(c, http.StatusBadRequest, "Malformed JSON body")
		return false
	}
	return true
}

// currentUser returns the authenticated user id or answers 500 when the
// route was mounted without the auth middleware
func currentUser(c *gin.Context, log *slog.Logger) (uuid.UUID, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondError(c, log, errors.New("user id missing from context"))
		return uuid.Nil, false
	}
	return userID, true
}
