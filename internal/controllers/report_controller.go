package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freight_dispatch/internal/services"
)

// ReportController serves the CSV exports.
type ReportController struct {
	svc *services.Service
}

func NewReportController(svc *services.Service) *ReportController {
	return &ReportController{svc: svc}
}

// GroupsCSV returns the group stats as a CSV document wrapped in JSON, the
// way the dispatcher frontend downloads it.
func (rc *ReportController) GroupsCSV(c *gin.Context) {
	report, err := rc.svc.GroupsReportCSV()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
