package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"freight_dispatch/internal/services"
)

// ShipmentController serves the plain shipment bookkeeping endpoints.
type ShipmentController struct {
	svc *services.Service
}

func NewShipmentController(svc *services.Service) *ShipmentController {
	return &ShipmentController{svc: svc}
}

// CreateShipment stores a shipment together with its two endpoint stops.
func (sc *ShipmentController) CreateShipment(c *gin.Context) {
	var body struct {
		ExtID           *string    `json:"ext_id"`
		CreatedAt       *time.Time `json:"created_at"`
		ClosedAt        *time.Time `json:"closed_at"`
		OriginCity      string     `json:"origin_city" binding:"required"`
		DestinationCity string     `json:"destination_city" binding:"required"`
		PriceCostRub    *float64   `json:"price_cost_rub"`
		CarrierID       *uint      `json:"carrier_id"`
		VehicleMake     *string    `json:"vehicle_make"`
		VehicleModel    *string    `json:"vehicle_model"`
		RouteLabel      *string    `json:"route_label"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		logrus.WithError(err).Warn("CreateShipment: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := sc.svc.CreateShipment(services.CreateShipmentInput{
		ExtID:           body.ExtID,
		CreatedAt:       body.CreatedAt,
		ClosedAt:        body.ClosedAt,
		OriginCity:      body.OriginCity,
		DestinationCity: body.DestinationCity,
		PriceCostRub:    body.PriceCostRub,
		CarrierID:       body.CarrierID,
		VehicleMake:     body.VehicleMake,
		VehicleModel:    body.VehicleModel,
		RouteLabel:      body.RouteLabel,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListShipments returns shipments matching the optional query filters.
func (sc *ShipmentController) ListShipments(c *gin.Context) {
	filter := services.ShipmentFilter{
		Origin:      c.Query("origin"),
		Destination: c.Query("destination"),
		Carrier:     c.Query("carrier"),
	}

	if raw := c.Query("date_from"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date_from"})
			return
		}
		filter.DateFrom = &t
	}
	if raw := c.Query("date_to"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date_to"})
			return
		}
		filter.DateTo = &t
	}
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			filter.Limit = n
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			filter.Offset = n
		}
	}

	rows, err := sc.svc.ListShipments(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// parseDate accepts RFC3339 timestamps or plain dates.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
