package models

import (
	"time"
)

// CarrierGroupLink associates a carrier with a route group. A nil
// DefaultVariantID means the carrier serves any active variant of the group;
// a non-nil value restricts matching to exactly that variant. The
// (carrier, group) pair is unique and relinking overwrites the default.
type CarrierGroupLink struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CarrierID        uint  `gorm:"not null;uniqueIndex:idx_carrier_group" json:"carrier_id"`
	GroupID          uint  `gorm:"not null;uniqueIndex:idx_carrier_group" json:"group_id"`
	DefaultVariantID *uint `json:"default_variant_id"`

	Carrier Carrier    `gorm:"foreignKey:CarrierID" json:"-"`
	Group   RouteGroup `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE;" json:"-"`
}
