package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"freight_dispatch/internal/services"
)

// VariantController serves variant creation and full stop replacement.
type VariantController struct {
	svc *services.Service
}

func NewVariantController(svc *services.Service) *VariantController {
	return &VariantController{svc: svc}
}

// CreateVariant parses a delimited path string into a new variant of the
// group, e.g. "Moscow - Kazan -> Ufa".
func (v *VariantController) CreateVariant(c *gin.Context) {
	groupID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var body struct {
		Title *string `json:"title"`
		Path  string  `json:"path" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		logrus.WithError(err).Warn("CreateVariant: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	variantID, err := v.svc.CreateVariant(groupID, body.Title, body.Path)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"variant_id": variantID})
}

// ReplaceStops swaps a variant's stop list wholesale; partial updates are
// not supported.
func (v *VariantController) ReplaceStops(c *gin.Context) {
	variantID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var body struct {
		Stops []string `json:"stops" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		logrus.WithError(err).Warn("ReplaceStops: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := v.svc.ReplaceStops(variantID, body.Stops); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
