package routes

import (
	"github.com/gin-gonic/gin"

	"freight_dispatch/internal/controllers"
)

func CarrierRoutes(r *gin.Engine, auth gin.HandlerFunc, carrier *controllers.CarrierController) {
	carriers := r.Group("/carriers")
	carriers.Use(auth)
	{
		carriers.POST("", carrier.UpsertCarrier)
		carriers.GET("/search", carrier.Search)
		carriers.POST("/:id/groups", carrier.LinkGroup)
	}
}
