package models

// GroupStats maps the externally maintained mv_group_stats aggregate view.
// It is keyed by the lower-cased canonical city pair and is read-only here:
// never auto-migrated, never written.
type GroupStats struct {
	CityA      string   `gorm:"column:city_a" json:"city_a"`
	CityB      string   `gorm:"column:city_b" json:"city_b"`
	Trips      int64    `json:"trips"`
	Drivers    int64    `json:"drivers"`
	AvgPrice   *float64 `json:"avg_price"`
	MinPrice   *float64 `json:"min_price"`
	MaxPrice   *float64 `json:"max_price"`
	TotalPrice *float64 `json:"total_price"`
}

func (GroupStats) TableName() string {
	return "mv_group_stats"
}
