package httpapi

import (
	"net/http"

	"metaspace/internal/auth"
	"metaspace/internal/element"
	"metaspace/internal/maps"
	"metaspace/internal/space"
	"metaspace/internal/user"
	"metaspace/internal/world"

	"github.com/gin-gonic/gin"
)

// Handlers groups HTTP handlers for dependency injection.
// Keep these thin: parse/validate input, call internal services, return JSON.
// Internal error detail never reaches clients; it goes to the request logger.
type Handlers struct {
	Users     *user.Service
	Spaces    space.Repository
	Occupancy *space.Occupancy
	Worlds    world.Repository
	Maps      maps.Repository
	Elements  element.Repository
}

// identity pulls the verified identity injected by auth.RequireAuth.
// Routes reaching handlers that call this are always wired behind it, so a
// miss is a wiring defect.
func identity(c *gin.Context) (auth.Identity, bool) {
	id, err := auth.IdentityFrom(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return auth.Identity{}, false
	}
	return id, true
}
