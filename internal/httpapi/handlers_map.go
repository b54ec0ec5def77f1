package httpapi

import (
	"errors"
	"net/http"

	"metaspace/internal/maps"
	"metaspace/pkg/logger"

	"github.com/gin-gonic/gin"
)

type createMapRequest struct {
	WorldID       int    `json:"world_id"`
	Name          string `json:"name"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	BackgroundURL string `json:"background_url"`
}

type getMapRequest struct {
	MapID int `json:"map_id"`
}

func (h Handlers) CreateMap(c *gin.Context) {
	var req createMapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	mapID, err := h.Maps.Create(c.Request.Context(), maps.Map{
		WorldID:       req.WorldID,
		Name:          req.Name,
		Width:         req.Width,
		Height:        req.Height,
		BackgroundURL: req.BackgroundURL,
	})
	if err != nil {
		logger.FromGin(c).Error("map create failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"map_id": mapID})
}

func (h Handlers) GetMap(c *gin.Context) {
	var req getMapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	m, err := h.Maps.Get(c.Request.Context(), req.MapID)
	if err != nil {
		if errors.Is(err, maps.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		logger.FromGin(c).Error("map get failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h Handlers) ListMaps(c *gin.Context) {
	out, err := h.Maps.List(c.Request.Context())
	if err != nil {
		logger.FromGin(c).Error("map list failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"maps": out})
}
