package models

import (
	"time"
)

// Shipment is a plain bookkeeping record of a transported order. It carries
// no derived structure; origin/destination are normalized city names and the
// endpoint stops live in ShipmentStop.
type Shipment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UpdatedAt time.Time `json:"updated_at"`

	ExtID           *string    `gorm:"size:100;index" json:"ext_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	ClosedAt        *time.Time `json:"closed_at,omitempty"`
	OriginCity      string     `gorm:"size:200;not null;index" json:"origin_city"`
	DestinationCity string     `gorm:"size:200;not null;index" json:"destination_city"`
	PriceCostRub    *float64   `json:"price_cost_rub,omitempty"`
	CarrierID       *uint      `gorm:"index" json:"carrier_id,omitempty"`
	VehicleMake     *string    `gorm:"size:100" json:"vehicle_make,omitempty"`
	VehicleModel    *string    `gorm:"size:100" json:"vehicle_model,omitempty"`
	RouteLabel      *string    `gorm:"size:400" json:"route_label,omitempty"`

	Stops []ShipmentStop `gorm:"foreignKey:ShipmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"stops,omitempty"`
}

// ShipmentStop marks an endpoint of a shipment, seq 0 for the origin and
// 9999 for the destination, mirroring the variant stop convention.
type ShipmentStop struct {
	ShipmentID uint   `gorm:"primaryKey;autoIncrement:false" json:"shipment_id"`
	Seq        int    `gorm:"primaryKey;autoIncrement:false" json:"seq"`
	City       string `gorm:"size:200;not null" json:"city"`
}
