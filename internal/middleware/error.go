package middleware

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ServerErrorBody is the plain text body of every 500 response
const ServerErrorBody = "Server error"

// Recovery turns a panic into the generic 500 response and logs it
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		log.Error("panic recovered",
			"panic", recovered,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
		c.String(http.StatusInternalServerError, ServerErrorBody)
		c.Abort()
	})
}
