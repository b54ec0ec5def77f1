package main

import (
	"metaspace/internal/auth"
	"metaspace/internal/httpapi"
	"metaspace/internal/rbac"
	"metaspace/internal/space"

	"github.com/gin-gonic/gin"
)

// registerRoutes wires HTTP routes to handlers.
// Keep this file free of business logic. Handlers should delegate to internal modules.
func registerRoutes(r *gin.Engine, h httpapi.Handlers, m *auth.Manager) {
	// public
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")

	// COMMON routes: token issuance and registration; no auth in front.
	common := v1.Group("/common")
	{
		common.POST("/signin", h.SignIn)
		common.POST("/signup", h.SignUp)
		common.POST("/create_avatar", append(rbac.AdminOnly(m), h.CreateAvatar)...)
	}

	// USER routes
	userGroup := v1.Group("/user")
	userGroup.Use(auth.RequireAuth(m))
	{
		userGroup.POST("/metadata", h.UpdateMetadata)
		userGroup.POST("/metadata/bulk", h.MetadataBulk)
		userGroup.GET("/avatars", h.ListAvatars)
	}

	// SPACE routes; creation additionally passes payload pre-validation.
	spaceGroup := v1.Group("/space")
	spaceGroup.Use(auth.RequireAuth(m))
	{
		spaceGroup.POST("/create", space.ValidatePayload(), h.CreateSpace)
		spaceGroup.POST("/get_space", h.GetSpace)
		spaceGroup.POST("/get_all_spaces", h.ListSpaces)
		spaceGroup.POST("/delete_space", h.DeleteSpace)
		spaceGroup.POST("/join", h.JoinSpace)
		spaceGroup.POST("/leave", h.LeaveSpace)
	}

	// MAP routes
	mapGroup := v1.Group("/map")
	mapGroup.Use(auth.RequireAuth(m))
	{
		mapGroup.POST("/create", h.CreateMap)
		mapGroup.POST("/get_map", h.GetMap)
		mapGroup.POST("/get_maps", h.ListMaps)
	}

	// WORLD routes; creation is admin-only.
	worldGroup := v1.Group("/world")
	{
		worldGroup.POST("/create", append(rbac.AdminOnly(m), h.CreateWorld)...)
		worldGroup.GET("/get_worlds", auth.RequireAuth(m), h.ListWorlds)
	}

	// ELEMENT routes; template creation is admin-only.
	elementGroup := v1.Group("/element")
	{
		elementGroup.POST("/create", auth.RequireAuth(m), h.CreateElement)
		elementGroup.PUT("/update", auth.RequireAuth(m), h.UpdateElement)
		elementGroup.POST("/add", auth.RequireAuth(m), h.AddSpaceElement)
		elementGroup.POST("/add_map_element", auth.RequireAuth(m), h.AddMapElement)
		elementGroup.POST("/template", append(rbac.AdminOnly(m), h.CreateTemplate)...)
		elementGroup.GET("/templates", auth.RequireAuth(m), h.ListTemplates)
	}
}
