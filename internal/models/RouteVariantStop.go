package models

// RouteVariantStop is a city within a variant plus its position marker.
// Seq markers are sparse: 0 for the first stop, 9999 for the last, and
// increments of 100 between them, leaving room for future insertions.
type RouteVariantStop struct {
	VariantID uint   `gorm:"primaryKey;autoIncrement:false" json:"variant_id"`
	Seq       int    `gorm:"primaryKey;autoIncrement:false" json:"seq"`
	City      string `gorm:"size:200;not null" json:"city"`
}
