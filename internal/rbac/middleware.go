package rbac

import (
	"net/http"

	"metaspace/internal/auth"
	"metaspace/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RequireAdmin enforces role == admin on the identity injected by
// auth.RequireAuth. Any other role, including none, is a 403.
//
// A missing identity means the route was wired without authentication in
// front of this check. That is a deployment defect, so it surfaces as a 500
// rather than masquerading as an auth failure. Prefer AdminOnly, which makes
// the ordering impossible to get wrong.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := auth.IdentityFrom(c.Request.Context())
		if err != nil {
			logger.FromGin(c).Error("admin check before authentication; fix route wiring")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		if !id.IsAdmin() {
			logger.FromGin(c).Error("admin access denied", "sub", id.UserID, "role", string(id.Role))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}

		c.Next()
	}
}

// AdminOnly bundles authentication and the admin role check so the
// dependency between the two stages is fixed at construction time.
func AdminOnly(m *auth.Manager) []gin.HandlerFunc {
	return []gin.HandlerFunc{auth.RequireAuth(m), RequireAdmin()}
}
