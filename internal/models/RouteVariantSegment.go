package models

import (
	"time"
)

// RouteVariantSegment records a derived sub-path: the inclusive seq range
// sliced out of a parent variant, registered under the group of the derived
// city pair. The four-column unique index makes re-derivation a no-op.
type RouteVariantSegment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	GroupID         uint `gorm:"not null;uniqueIndex:idx_segment_slice" json:"group_id"`
	ParentVariantID uint `gorm:"not null;uniqueIndex:idx_segment_slice" json:"parent_variant_id"`
	StartSeq        int  `gorm:"not null;uniqueIndex:idx_segment_slice" json:"start_seq"`
	EndSeq          int  `gorm:"not null;uniqueIndex:idx_segment_slice" json:"end_seq"`

	Group         RouteGroup   `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE;" json:"-"`
	ParentVariant RouteVariant `gorm:"foreignKey:ParentVariantID;constraint:OnDelete:CASCADE;" json:"-"`
}
