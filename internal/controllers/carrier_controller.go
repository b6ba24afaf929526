package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freight_dispatch/internal/services"
)

// CarrierController serves carrier registration, group linking and the
// directional segment search.
type CarrierController struct {
	svc *services.Service
}

func NewCarrierController(svc *services.Service) *CarrierController {
	return &CarrierController{svc: svc}
}

// UpsertCarrier registers a carrier by (name, phone); a repeated
// registration updates the vehicle fields.
func (cc *CarrierController) UpsertCarrier(c *gin.Context) {
	var body struct {
		Name         string  `json:"name" binding:"required"`
		Phone        string  `json:"phone"`
		VehicleMake  *string `json:"vehicle_make"`
		VehicleModel *string `json:"vehicle_model"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := cc.svc.UpsertCarrier(body.Name, body.Phone, body.VehicleMake, body.VehicleModel)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// LinkGroup associates the carrier with a group, optionally pinning one
// variant as its default.
func (cc *CarrierController) LinkGroup(c *gin.Context) {
	carrierID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var body struct {
		GroupID          uint  `json:"group_id" binding:"required"`
		DefaultVariantID *uint `json:"default_variant_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := cc.svc.GetCarrier(carrierID); err != nil {
		respondError(c, err)
		return
	}

	linkID, defaultVariantID, err := cc.svc.LinkCarrierGroup(carrierID, body.GroupID, body.DefaultVariantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": linkID, "default_variant_id": defaultVariantID})
}

// Search lists carriers covering the directional origin→destination segment.
func (cc *CarrierController) Search(c *gin.Context) {
	origin := c.Query("origin")
	destination := c.Query("destination")

	matches, err := cc.svc.SearchCarriers(origin, destination)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}
