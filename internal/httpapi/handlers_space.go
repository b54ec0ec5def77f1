package httpapi

import (
	"errors"
	"net/http"

	"metaspace/internal/space"
	"metaspace/pkg/logger"

	"github.com/gin-gonic/gin"
)

type spaceIDRequest struct {
	SpaceID int `json:"space_id"`
}

// CreateSpace persists a space from the envelope validated by
// space.ValidatePayload. The handler consumes the exact validated shape.
func (h Handlers) CreateSpace(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	payload, ok := space.PayloadFrom(c)
	if !ok {
		// Route wired without the validation middleware.
		logger.FromGin(c).Error("space create without validated payload; fix route wiring")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	spaceID, err := h.Spaces.Create(c.Request.Context(), space.Space{
		MapID:     payload.MapID,
		Name:      payload.Name,
		Width:     payload.Width,
		Height:    payload.Height,
		CreatedBy: id.UserID,
	})
	if err != nil {
		logger.FromGin(c).Error("space create failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"space_id": spaceID})
}

func (h Handlers) GetSpace(c *gin.Context) {
	var req spaceIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	s, err := h.Spaces.Get(c.Request.Context(), req.SpaceID)
	if err != nil {
		if errors.Is(err, space.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		logger.FromGin(c).Error("space get failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h Handlers) ListSpaces(c *gin.Context) {
	spaces, err := h.Spaces.List(c.Request.Context())
	if err != nil {
		logger.FromGin(c).Error("space list failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"spaces": spaces})
}

func (h Handlers) DeleteSpace(c *gin.Context) {
	var req spaceIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	if err := h.Spaces.Delete(c.Request.Context(), req.SpaceID); err != nil {
		if errors.Is(err, space.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		logger.FromGin(c).Error("space delete failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Status(http.StatusOK)
}

// JoinSpace takes an occupancy slot; 409 when the space is full.
func (h Handlers) JoinSpace(c *gin.Context) {
	var req spaceIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	s, err := h.Spaces.Get(c.Request.Context(), req.SpaceID)
	if err != nil {
		if errors.Is(err, space.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		logger.FromGin(c).Error("space lookup failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	ok, err := h.Occupancy.Join(c.Request.Context(), s.ID, s.MaxOccupancy)
	if err != nil {
		logger.FromGin(c).Error("occupancy acquire failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if !ok {
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "space is full"})
		return
	}
	c.Status(http.StatusOK)
}

func (h Handlers) LeaveSpace(c *gin.Context) {
	var req spaceIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	if err := h.Occupancy.Leave(c.Request.Context(), req.SpaceID); err != nil {
		logger.FromGin(c).Error("occupancy release failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Status(http.StatusOK)
}
