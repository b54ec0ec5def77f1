package auth

import (
	"net/http"
	"strings"
	"time"

	"metaspace/pkg/logger"

	"github.com/gin-gonic/gin"
)

const authorizationHeader = "Authorization"
const bearerPrefix = "Bearer "

// RequireAuth verifies the bearer token and injects the caller identity into
// the request context. It performs no role checks; those belong to internal/rbac.
//
// Logging never includes the raw token or the signing secret.
func RequireAuth(m *Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.FromGin(c)

		raw := strings.TrimSpace(c.GetHeader(authorizationHeader))
		if raw == "" || !strings.HasPrefix(raw, bearerPrefix) {
			log.Error("auth rejected", "reason", "missing or malformed Authorization header")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tok := strings.TrimPrefix(raw, bearerPrefix)
		if tok == "" {
			log.Error("auth rejected", "reason", "empty bearer token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := m.Verify(tok, time.Now())
		if err != nil {
			log.Error("auth rejected", "reason", "token verification failed", "err", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		id, err := claims.Identity()
		if err != nil {
			log.Error("auth rejected", "reason", "non-numeric subject", "sub", claims.Subject)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		log.Info("authenticated", "sub", claims.Subject)

		c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), id))
		c.Next()
	}
}
