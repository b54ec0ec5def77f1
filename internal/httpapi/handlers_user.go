package httpapi

import (
	"errors"
	"net/http"

	"metaspace/internal/user"
	"metaspace/pkg/logger"

	"github.com/gin-gonic/gin"
)

type metadataRequest struct {
	AvatarID int `json:"avatar_id"`
}

type metadataBulkRequest struct {
	UserIDs []int `json:"user_ids"`
}

type createAvatarRequest struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// UpdateMetadata sets the calling user's avatar.
func (h Handlers) UpdateMetadata(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	var req metadataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	if err := h.Users.SetAvatar(c.Request.Context(), id.UserID, req.AvatarID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		logger.FromGin(c).Error("metadata update failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Status(http.StatusOK)
}

// MetadataBulk returns avatar selections for a batch of user ids.
func (h Handlers) MetadataBulk(c *gin.Context) {
	var req metadataBulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	out, err := h.Users.AvatarsByUserIDs(c.Request.Context(), req.UserIDs)
	if err != nil {
		logger.FromGin(c).Error("bulk metadata failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"avatars": out})
}

// ListAvatars returns the avatar catalog.
func (h Handlers) ListAvatars(c *gin.Context) {
	avatars, err := h.Users.ListAvatars(c.Request.Context())
	if err != nil {
		logger.FromGin(c).Error("avatar list failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"avatars": avatars})
}

// CreateAvatar adds an avatar to the catalog. Admin only.
func (h Handlers) CreateAvatar(c *gin.Context) {
	var req createAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	id, err := h.Users.CreateAvatar(c.Request.Context(), req.Name, req.ImageURL)
	if err != nil {
		if errors.Is(err, user.ErrInvalidArgument) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "name and image_url required"})
			return
		}
		logger.FromGin(c).Error("avatar create failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"avatar_id": id})
}
