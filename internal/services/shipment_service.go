package services

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"freight_dispatch/internal/cities"
	"freight_dispatch/internal/models"
)

// CreateShipmentInput carries the shipment fields accepted from the caller.
type CreateShipmentInput struct {
	ExtID           *string
	CreatedAt       *time.Time
	ClosedAt        *time.Time
	OriginCity      string
	DestinationCity string
	PriceCostRub    *float64
	CarrierID       *uint
	VehicleMake     *string
	VehicleModel    *string
	RouteLabel      *string
}

// ShipmentFilter composes the optional predicates of the shipment listing.
// Carrier is either a numeric id or a name fragment.
type ShipmentFilter struct {
	Origin      string
	Destination string
	DateFrom    *time.Time
	DateTo      *time.Time
	Carrier     string
	Limit       int
	Offset      int
}

// ShipmentRow is a shipment joined with its carrier's contact fields.
type ShipmentRow struct {
	models.Shipment
	CarrierName  *string `json:"carrier_name"`
	CarrierPhone *string `json:"carrier_phone"`
}

// CreateShipment stores the shipment and its two endpoint stops in one
// transaction. A missing ext id gets a generated one.
func (s *Service) CreateShipment(in CreateShipmentInput) (uint, error) {
	origin := cities.Normalize(in.OriginCity)
	destination := cities.Normalize(in.DestinationCity)
	if origin == "" || destination == "" {
		return 0, &ValidationError{Message: "origin_city and destination_city are required"}
	}

	extID := in.ExtID
	if extID == nil || *extID == "" {
		generated := uuid.NewString()
		extID = &generated
	}

	var id uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		shipment := models.Shipment{
			ExtID:           extID,
			ClosedAt:        in.ClosedAt,
			OriginCity:      origin,
			DestinationCity: destination,
			PriceCostRub:    in.PriceCostRub,
			CarrierID:       in.CarrierID,
			VehicleMake:     in.VehicleMake,
			VehicleModel:    in.VehicleModel,
			RouteLabel:      in.RouteLabel,
		}
		if in.CreatedAt != nil {
			shipment.CreatedAt = *in.CreatedAt
		}
		if err := tx.Create(&shipment).Error; err != nil {
			if isForeignKeyViolation(err) {
				return &NotFoundError{Message: "carrier not found"}
			}
			return err
		}

		endpointStops := []models.ShipmentStop{
			{ShipmentID: shipment.ID, Seq: 0, City: origin},
			{ShipmentID: shipment.ID, Seq: lastSeq, City: destination},
		}
		if err := tx.Create(&endpointStops).Error; err != nil {
			return err
		}
		id = shipment.ID
		return nil
	})
	return id, err
}

// ListShipments applies the filter as parameterized predicates and returns
// shipments newest first (by close date, falling back to creation date).
func (s *Service) ListShipments(f ShipmentFilter) ([]ShipmentRow, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 200
	}

	q := s.db.Table("shipments s").
		Select("s.*, c.name AS carrier_name, c.phone AS carrier_phone").
		Joins("LEFT JOIN carriers c ON c.id = s.carrier_id")

	if f.Origin != "" {
		q = q.Where("lower(s.origin_city) = lower(?)", cities.Normalize(f.Origin))
	}
	if f.Destination != "" {
		q = q.Where("lower(s.destination_city) = lower(?)", cities.Normalize(f.Destination))
	}
	if f.DateFrom != nil {
		q = q.Where("s.created_at >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("s.created_at <= ?", *f.DateTo)
	}
	if f.Carrier != "" {
		if carrierID, err := strconv.Atoi(f.Carrier); err == nil {
			q = q.Where("s.carrier_id = ?", carrierID)
		} else {
			q = q.Where("lower(c.name) LIKE lower(?)", "%"+f.Carrier+"%")
		}
	}

	var rows []ShipmentRow
	err := q.Order("COALESCE(s.closed_at, s.created_at) DESC").
		Limit(limit).Offset(f.Offset).
		Scan(&rows).Error
	return rows, err
}
