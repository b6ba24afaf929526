package services

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"freight_dispatch/internal/cities"
	"freight_dispatch/internal/models"
)

// DerivedSegment is the result of slicing a parent variant between two of
// its stops.
type DerivedSegment struct {
	GroupID         uint     `json:"group_id"`
	ParentVariantID uint     `json:"parent_variant_id"`
	Path            []string `json:"path"`
}

// AutoDerive finds an active variant containing both cities, slices the
// contiguous sub-path between them in the caller's direction, ensures a
// group for the pair and registers the segment. Variants are scanned in
// ascending id order, so when several qualify the lowest id wins
// deterministically. Re-deriving an already registered segment is a no-op.
func (s *Service) AutoDerive(origin, destination string) (*DerivedSegment, error) {
	o, d := cities.Normalize(origin), cities.Normalize(destination)
	if o == "" || d == "" {
		return nil, &ValidationError{Message: "origin and destination are required"}
	}

	var result *DerivedSegment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var variants []models.RouteVariant
		if err := tx.Where("is_active = ?", true).Order("id").Find(&variants).Error; err != nil {
			return err
		}

		for _, variant := range variants {
			// Stops are read in a single query: a concurrent replace is
			// either fully visible or not at all.
			var stops []models.RouteVariantStop
			if err := tx.Where("variant_id = ?", variant.ID).Order("seq").Find(&stops).Error; err != nil {
				return err
			}

			cityToSeq := make(map[string]int, len(stops))
			for _, st := range stops {
				cityToSeq[strings.ToLower(st.City)] = st.Seq
			}
			originSeq, okO := cityToSeq[strings.ToLower(o)]
			destSeq, okD := cityToSeq[strings.ToLower(d)]
			if !okO || !okD || originSeq == destSeq {
				continue
			}

			path := slicePath(stops, originSeq, destSeq)

			groupID, err := ensureGroup(tx, o, d)
			if err != nil {
				return err
			}

			startSeq, endSeq := originSeq, destSeq
			if startSeq > endSeq {
				startSeq, endSeq = endSeq, startSeq
			}
			segment := models.RouteVariantSegment{
				GroupID:         groupID,
				ParentVariantID: variant.ID,
				StartSeq:        startSeq,
				EndSeq:          endSeq,
			}
			res := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "group_id"}, {Name: "parent_variant_id"},
					{Name: "start_seq"}, {Name: "end_seq"},
				},
				DoNothing: true,
			}).Create(&segment)
			if res.Error != nil && !isUniqueViolation(res.Error) {
				return res.Error
			}

			result = &DerivedSegment{GroupID: groupID, ParentVariantID: variant.ID, Path: path}
			return nil
		}
		return &NotFoundError{Message: fmt.Sprintf("no active variant spans %s → %s", o, d)}
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// slicePath keeps the contiguous stops between the two seq values,
// inclusive, walking in the caller's origin→destination direction.
func slicePath(stops []models.RouteVariantStop, originSeq, destSeq int) []string {
	var path []string
	if originSeq < destSeq {
		for _, st := range stops {
			if st.Seq >= originSeq && st.Seq <= destSeq {
				path = append(path, st.City)
			}
		}
	} else {
		for i := len(stops) - 1; i >= 0; i-- {
			if stops[i].Seq >= destSeq && stops[i].Seq <= originSeq {
				path = append(path, stops[i].City)
			}
		}
	}
	return path
}
