package models

import (
	"time"
)

// RouteGroup is the canonical record for an unordered pair of cities.
// CityA and CityB are stored in canonical order: the case-insensitive
// lexicographically smaller city goes into CityA. The pair is unique
// across all groups, so ensure(a,b) and ensure(b,a) land on the same row.
type RouteGroup struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CityA string `gorm:"size:200;not null;uniqueIndex:idx_group_pair" json:"city_a"`
	CityB string `gorm:"size:200;not null;uniqueIndex:idx_group_pair" json:"city_b"`

	Variants []RouteVariant `gorm:"foreignKey:GroupID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"variants,omitempty"`
}
