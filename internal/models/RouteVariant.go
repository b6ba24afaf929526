package models

import (
	"time"
)

// RouteVariant is one concrete ordered path belonging to a group.
// Stops are always persisted in canonical direction: first stop equals the
// group's CityA, last stop equals CityB. Revision is an optimistic version
// counter bumped on every full stop replacement; readers that captured a
// stale revision must not commit over a newer one.
type RouteVariant struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	GroupID  uint    `gorm:"not null;index" json:"group_id"`
	Title    *string `gorm:"size:200" json:"title,omitempty"`
	IsActive bool    `gorm:"not null;default:true;index" json:"is_active"`
	Revision uint    `gorm:"not null;default:0" json:"revision"`

	Stops []RouteVariantStop `gorm:"foreignKey:VariantID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"stops,omitempty"`
}
