package routes

import (
	"github.com/gin-gonic/gin"

	"freight_dispatch/internal/controllers"
)

func GroupRoutes(r *gin.Engine, auth gin.HandlerFunc, group *controllers.GroupController, variant *controllers.VariantController) {
	groups := r.Group("/route-groups")
	groups.Use(auth)
	{
		groups.POST("/ensure", group.EnsureGroup)
		groups.POST("/auto-derive", group.AutoDerive)
		groups.GET("", group.ListGroups)
		groups.GET("/:id", group.GetGroup)
		groups.DELETE("/:id", group.DeleteGroup)
		groups.POST("/:id/variants", variant.CreateVariant)
	}

	variants := r.Group("/route-variants")
	variants.Use(auth)
	{
		variants.PUT("/:id/stops", variant.ReplaceStops)
	}
}
