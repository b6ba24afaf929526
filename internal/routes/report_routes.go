package routes

import (
	"github.com/gin-gonic/gin"

	"freight_dispatch/internal/controllers"
)

func ReportRoutes(r *gin.Engine, auth gin.HandlerFunc, report *controllers.ReportController) {
	reports := r.Group("/reports")
	reports.Use(auth)
	{
		reports.GET("/groups.csv", report.GroupsCSV)
	}
}
