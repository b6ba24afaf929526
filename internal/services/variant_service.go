package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"freight_dispatch/internal/cities"
	"freight_dispatch/internal/models"
)

// lastSeq is the sentinel position of a path's final stop; intermediate
// stops go 0, 100, 200, … leaving room for insertions.
const (
	seqStep = 100
	lastSeq = 9999
)

// CreateVariant parses the delimited path, validates it against the group's
// boundary cities and stores the stops in canonical direction
// (CityA → CityB) with sparse seq markers.
func (s *Service) CreateVariant(groupID uint, title *string, path string) (uint, error) {
	var variantID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var group models.RouteGroup
		if err := tx.First(&group, groupID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Message: "Group not found"}
			}
			return err
		}

		stops, err := cities.ParsePath(path)
		if err != nil {
			return &ValidationError{Message: err.Error()}
		}
		stops, err = canonicalDirection(stops, group)
		if err != nil {
			return err
		}

		variant := models.RouteVariant{GroupID: group.ID, Title: title, IsActive: true}
		if err := tx.Create(&variant).Error; err != nil {
			return err
		}
		records := buildStops(variant.ID, stops)
		if err := tx.Create(&records).Error; err != nil {
			return err
		}
		variantID = variant.ID
		return nil
	})
	return variantID, err
}

// ReplaceStops atomically swaps a variant's stop list for a new one. The
// write is guarded by the variant's revision counter: if anyone replaced the
// stops since this transaction read the variant, the update matches zero
// rows and the whole transaction rolls back with a ConflictError.
func (s *Service) ReplaceStops(variantID uint, rawStops []string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var variant models.RouteVariant
		if err := tx.First(&variant, variantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Message: "Variant not found"}
			}
			return err
		}
		var group models.RouteGroup
		if err := tx.First(&group, variant.GroupID).Error; err != nil {
			return err
		}

		stops, err := cities.SplitStops(rawStops)
		if err != nil {
			return &ValidationError{Message: err.Error()}
		}
		stops, err = canonicalDirection(stops, group)
		if err != nil {
			return err
		}

		res := tx.Model(&models.RouteVariant{}).
			Where("id = ? AND revision = ?", variant.ID, variant.Revision).
			Update("revision", variant.Revision+1)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &ConflictError{Message: "variant stops were modified concurrently, retry"}
		}

		if err := tx.Where("variant_id = ?", variant.ID).Delete(&models.RouteVariantStop{}).Error; err != nil {
			return err
		}
		records := buildStops(variant.ID, stops)
		return tx.Create(&records).Error
	})
}

// canonicalDirection checks that the stop list runs between the group's two
// cities (either way around) and returns it oriented CityA → CityB.
func canonicalDirection(stops []string, group models.RouteGroup) ([]string, error) {
	first, last := stops[0], stops[len(stops)-1]
	switch {
	case strings.EqualFold(first, group.CityA) && strings.EqualFold(last, group.CityB):
		return stops, nil
	case strings.EqualFold(first, group.CityB) && strings.EqualFold(last, group.CityA):
		reversed := make([]string, len(stops))
		for i, s := range stops {
			reversed[len(stops)-1-i] = s
		}
		return reversed, nil
	default:
		return nil, &ValidationError{
			Message: fmt.Sprintf("path must start and end at the group boundaries (%s — %s)", group.CityA, group.CityB),
		}
	}
}

// buildStops assigns the sparse seq markers: 0, 100, 200, …, 9999.
func buildStops(variantID uint, stops []string) []models.RouteVariantStop {
	out := make([]models.RouteVariantStop, len(stops))
	for i, city := range stops {
		seq := i * seqStep
		if i == len(stops)-1 {
			seq = lastSeq
		}
		out[i] = models.RouteVariantStop{VariantID: variantID, Seq: seq, City: city}
	}
	return out
}
