package httpapi

import (
	"net/http"

	"metaspace/internal/world"
	"metaspace/pkg/logger"

	"github.com/gin-gonic/gin"
)

type createWorldRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail_url"`
	IsPublic     bool   `json:"is_public"`
}

// CreateWorld registers a world with the caller as creator. Admin only.
func (h Handlers) CreateWorld(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	var req createWorldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if req.Name == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "name required"})
		return
	}

	worldID, err := h.Worlds.Create(c.Request.Context(), world.World{
		Name:         req.Name,
		Description:  req.Description,
		ThumbnailURL: req.ThumbnailURL,
		CreatorID:    id.UserID,
		IsPublic:     req.IsPublic,
	})
	if err != nil {
		logger.FromGin(c).Error("world create failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"world_id": worldID})
}

func (h Handlers) ListWorlds(c *gin.Context) {
	worlds, err := h.Worlds.List(c.Request.Context())
	if err != nil {
		logger.FromGin(c).Error("world list failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"worlds": worlds})
}
