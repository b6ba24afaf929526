package routes

import (
	"github.com/gin-gonic/gin"

	"freight_dispatch/internal/controllers"
)

func AuthRoutes(r *gin.Engine, auth *controllers.AuthController) {
	group := r.Group("/auth")
	{
		group.POST("/login", auth.Login)
	}
}
