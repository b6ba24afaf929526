package models

import (
	"time"
)

// Carrier is a transport operator that can be linked to route groups.
// A carrier is identified by (name, phone); registering the same pair again
// updates the vehicle fields in place instead of creating a duplicate.
type Carrier struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name         string  `gorm:"size:200;not null;uniqueIndex:idx_carrier_identity" json:"name"`
	Phone        string  `gorm:"size:50;not null;default:'';uniqueIndex:idx_carrier_identity" json:"phone"`
	VehicleMake  *string `gorm:"size:100" json:"vehicle_make,omitempty"`
	VehicleModel *string `gorm:"size:100" json:"vehicle_model,omitempty"`

	GroupLinks []CarrierGroupLink `gorm:"foreignKey:CarrierID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"group_links,omitempty"`
}
