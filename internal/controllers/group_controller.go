package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"freight_dispatch/internal/services"
)

// GroupController serves the route-group endpoints: canonical get-or-create,
// listing with stats, detail view, segment derivation and deletion.
type GroupController struct {
	svc *services.Service
}

func NewGroupController(svc *services.Service) *GroupController {
	return &GroupController{svc: svc}
}

// EnsureGroup gets or creates the canonical group for a city pair.
func (g *GroupController) EnsureGroup(c *gin.Context) {
	var body struct {
		Origin      string `json:"origin" binding:"required"`
		Destination string `json:"destination" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	groupID, err := g.svc.EnsureGroup(body.Origin, body.Destination)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"group_id": groupID})
}

// ListGroups returns all groups with their aggregate stats.
func (g *GroupController) ListGroups(c *gin.Context) {
	rows, err := g.svc.ListGroups()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetGroup returns a group with its active variants and carrier links.
func (g *GroupController) GetGroup(c *gin.Context) {
	groupID, ok := pathID(c, "id")
	if !ok {
		return
	}
	detail, err := g.svc.GetGroupDetail(groupID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// AutoDerive slices a sub-path out of an existing variant for the pair.
func (g *GroupController) AutoDerive(c *gin.Context) {
	var body struct {
		Origin      string `json:"origin" binding:"required"`
		Destination string `json:"destination" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	segment, err := g.svc.AutoDerive(body.Origin, body.Destination)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, segment)
}

// DeleteGroup removes a group and everything hanging off it.
func (g *GroupController) DeleteGroup(c *gin.Context) {
	groupID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := g.svc.DeleteGroup(groupID); err != nil {
		respondError(c, err)
		return
	}
	logrus.WithField("group_id", groupID).Info("DeleteGroup: group removed")
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
