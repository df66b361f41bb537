package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Authenticator decides whether a session token identifies an active session.
type Authenticator interface {
	IsAuthenticated(ctx context.Context, sessionKey string) (bool, error)
}

// SessionAuth returns a Gin middleware gating a route on a valid session
// token carried in the SessionKey header. In the directory's route table
// only the user listing is gated; the per-id and mutation routes are
// deliberately left open to match the service contract.
func SessionAuth(auth Authenticator, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("SessionKey")

		ok, err := auth.IsAuthenticated(c.Request.Context(), token)
		if err != nil {
			log.Error("failed to check session", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":   "internal_error",
				"message": "an internal error occurred",
			})
			return
		}
		if !ok {
			log.Warn("request rejected: missing or invalid session key",
				zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "missing or invalid session key",
			})
			return
		}

		c.Next()
	}
}
