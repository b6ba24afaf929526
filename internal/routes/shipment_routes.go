package routes

import (
	"github.com/gin-gonic/gin"

	"freight_dispatch/internal/controllers"
)

func ShipmentRoutes(r *gin.Engine, auth gin.HandlerFunc, shipment *controllers.ShipmentController) {
	shipments := r.Group("/shipments")
	shipments.Use(auth)
	{
		shipments.GET("", shipment.ListShipments)
		shipments.POST("", shipment.CreateShipment)
	}
}
