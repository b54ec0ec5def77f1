package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"metaspace/internal/element"
	"metaspace/pkg/logger"

	"github.com/gin-gonic/gin"
)

type createElementRequest struct {
	ImageURL string `json:"image_url"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	IsStatic bool   `json:"is_static"`
}

type updateElementRequest struct {
	ElementID int    `json:"element_id"`
	ImageURL  string `json:"image_url"`
}

type addSpaceElementRequest struct {
	SpaceID          int             `json:"space_id"`
	TemplateID       int             `json:"template_id"`
	X                int             `json:"x"`
	Y                int             `json:"y"`
	ZIndex           int             `json:"z_index"`
	Rotation         int             `json:"rotation"`
	CustomProperties json.RawMessage `json:"custom_properties"`
}

type addMapElementRequest struct {
	MapID            int             `json:"map_id"`
	TemplateID       int             `json:"template_id"`
	X                int             `json:"x"`
	Y                int             `json:"y"`
	ZIndex           int             `json:"z_index"`
	TargetSpaceID    *int            `json:"target_space_id,omitempty"`
	CustomProperties json.RawMessage `json:"custom_properties"`
}

type createTemplateRequest struct {
	Name              string          `json:"name"`
	Type              string          `json:"type"`
	ImageURL          string          `json:"image_url"`
	ModelURL          string          `json:"model_url"`
	Width             int             `json:"width"`
	Height            int             `json:"height"`
	IsCollidable      bool            `json:"is_collidable"`
	InteractionData   json.RawMessage `json:"interaction_data"`
	PhysicsProperties json.RawMessage `json:"physics_properties"`
}

func (h Handlers) CreateElement(c *gin.Context) {
	var req createElementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	id, err := h.Elements.CreateElement(c.Request.Context(), element.Element{
		ImageURL: req.ImageURL,
		Width:    req.Width,
		Height:   req.Height,
		IsStatic: req.IsStatic,
	})
	if err != nil {
		logger.FromGin(c).Error("element create failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"element_id": id})
}

func (h Handlers) UpdateElement(c *gin.Context) {
	var req updateElementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	if err := h.Elements.UpdateElementImage(c.Request.Context(), req.ElementID, req.ImageURL); err != nil {
		if errors.Is(err, element.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		logger.FromGin(c).Error("element update failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Status(http.StatusAccepted)
}

func (h Handlers) AddSpaceElement(c *gin.Context) {
	var req addSpaceElementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	err := h.Elements.AddSpaceElement(c.Request.Context(), element.SpaceElement{
		SpaceID:          req.SpaceID,
		TemplateID:       req.TemplateID,
		X:                req.X,
		Y:                req.Y,
		ZIndex:           req.ZIndex,
		Rotation:         req.Rotation,
		CustomProperties: req.CustomProperties,
	})
	if err != nil {
		logger.FromGin(c).Error("space element add failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Status(http.StatusCreated)
}

func (h Handlers) AddMapElement(c *gin.Context) {
	var req addMapElementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	err := h.Elements.AddMapElement(c.Request.Context(), element.MapElement{
		MapID:            req.MapID,
		TemplateID:       req.TemplateID,
		X:                req.X,
		Y:                req.Y,
		ZIndex:           req.ZIndex,
		TargetSpaceID:    req.TargetSpaceID,
		CustomProperties: req.CustomProperties,
	})
	if err != nil {
		logger.FromGin(c).Error("map element add failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Status(http.StatusCreated)
}

// CreateTemplate registers an element template. Admin only.
func (h Handlers) CreateTemplate(c *gin.Context) {
	var req createTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	typ := element.Type(req.Type)
	if !typ.Valid() {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "unrecognized element type"})
		return
	}

	id, err := h.Elements.CreateTemplate(c.Request.Context(), element.Template{
		Name:              req.Name,
		Type:              typ,
		ImageURL:          req.ImageURL,
		ModelURL:          req.ModelURL,
		Width:             req.Width,
		Height:            req.Height,
		IsCollidable:      req.IsCollidable,
		InteractionData:   req.InteractionData,
		PhysicsProperties: req.PhysicsProperties,
	})
	if err != nil {
		logger.FromGin(c).Error("template create failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"template_id": id})
}

func (h Handlers) ListTemplates(c *gin.Context) {
	out, err := h.Elements.ListTemplates(c.Request.Context())
	if err != nil {
		logger.FromGin(c).Error("template list failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": out})
}
