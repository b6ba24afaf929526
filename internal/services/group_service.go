package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"freight_dispatch/internal/cities"
	"freight_dispatch/internal/models"
)

// GroupStatsRow is a group joined with its externally maintained aggregates.
type GroupStatsRow struct {
	ID         uint     `json:"id"`
	CityA      string   `json:"city_a"`
	CityB      string   `json:"city_b"`
	Trips      int64    `json:"trips"`
	Drivers    int64    `json:"drivers"`
	AvgPrice   *float64 `json:"avg_price"`
	MinPrice   *float64 `json:"min_price"`
	MaxPrice   *float64 `json:"max_price"`
	TotalPrice *float64 `json:"total_price"`
}

// CarrierLinkRow is a carrier link as shown in the group detail view.
type CarrierLinkRow struct {
	ID               uint   `json:"id"`
	CarrierID        uint   `json:"carrier_id"`
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	DefaultVariantID *uint  `json:"default_variant_id"`
}

// GroupDetail is a group with its active variants (stops included) and
// carrier links.
type GroupDetail struct {
	Group        models.RouteGroup     `json:"group"`
	Variants     []models.RouteVariant `json:"variants"`
	CarrierLinks []CarrierLinkRow      `json:"carrier_links"`
}

// EnsureGroup returns the id of the canonical group for the unordered city
// pair, creating it if absent. Symmetric in its arguments and idempotent
// under concurrent callers.
func (s *Service) EnsureGroup(a, b string) (uint, error) {
	var id uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		id, err = ensureGroup(tx, a, b)
		return err
	})
	return id, err
}

// ensureGroup is the transactional get-or-create. The insert tolerates a
// concurrent winner: on conflict nothing is written and the existing row is
// fetched instead.
func ensureGroup(tx *gorm.DB, a, b string) (uint, error) {
	a, b = cities.Normalize(a), cities.Normalize(b)
	if a == "" || b == "" {
		return 0, &ValidationError{Message: "origin and destination are required"}
	}
	cityA, cityB := a, b
	if strings.ToLower(cityB) < strings.ToLower(cityA) {
		cityA, cityB = cityB, cityA
	}

	group := models.RouteGroup{CityA: cityA, CityB: cityB}
	res := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "city_a"}, {Name: "city_b"}},
		DoNothing: true,
	}).Create(&group)
	if res.Error != nil && !isUniqueViolation(res.Error) {
		return 0, res.Error
	}
	if res.Error == nil && res.RowsAffected > 0 {
		return group.ID, nil
	}

	var existing models.RouteGroup
	if err := tx.Where("city_a = ? AND city_b = ?", cityA, cityB).First(&existing).Error; err != nil {
		return 0, err
	}
	return existing.ID, nil
}

// ListGroups returns all groups joined against mv_group_stats, ordered by
// the canonical pair.
func (s *Service) ListGroups() ([]GroupStatsRow, error) {
	var rows []GroupStatsRow
	err := s.db.Table("route_groups g").
		Select("g.id, g.city_a, g.city_b, COALESCE(st.trips, 0) AS trips, COALESCE(st.drivers, 0) AS drivers, st.avg_price, st.min_price, st.max_price, st.total_price").
		Joins("LEFT JOIN mv_group_stats st ON lower(g.city_a) = st.city_a AND lower(g.city_b) = st.city_b").
		Order("g.city_a, g.city_b").
		Scan(&rows).Error
	return rows, err
}

// GetGroupDetail loads a group with its active variants and carrier links.
func (s *Service) GetGroupDetail(groupID uint) (*GroupDetail, error) {
	var detail GroupDetail
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&detail.Group, groupID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Message: "Group not found"}
			}
			return err
		}
		if err := tx.Where("group_id = ? AND is_active = ?", groupID, true).
			Order("id").
			Preload("Stops", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
			Find(&detail.Variants).Error; err != nil {
			return err
		}
		return tx.Table("carrier_group_links cgl").
			Select("cgl.id, c.id AS carrier_id, c.name, c.phone, cgl.default_variant_id").
			Joins("JOIN carriers c ON c.id = cgl.carrier_id").
			Where("cgl.group_id = ?", groupID).
			Scan(&detail.CarrierLinks).Error
	})
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// DeleteGroup removes a group together with its carrier links, variants,
// stops and segments. Deletes are explicit rather than relying on database
// cascades so the behavior is identical across backends.
func (s *Service) DeleteGroup(groupID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		variantIDs := tx.Model(&models.RouteVariant{}).Select("id").Where("group_id = ?", groupID)

		if err := tx.Where("group_id = ?", groupID).Delete(&models.CarrierGroupLink{}).Error; err != nil {
			return err
		}
		if err := tx.Where("group_id = ? OR parent_variant_id IN (?)", groupID, variantIDs).
			Delete(&models.RouteVariantSegment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("variant_id IN (?)", variantIDs).Delete(&models.RouteVariantStop{}).Error; err != nil {
			return err
		}
		if err := tx.Where("group_id = ?", groupID).Delete(&models.RouteVariant{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.RouteGroup{}, groupID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &NotFoundError{Message: fmt.Sprintf("Group %d not found", groupID)}
		}
		return nil
	})
}
