package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"freight_dispatch/internal/cities"
	"freight_dispatch/internal/models"
)

// CarrierMatch is one carrier qualified for a directional origin→destination
// request, annotated with the exact stop path it would traverse.
type CarrierMatch struct {
	CarrierID uint     `json:"carrier_id"`
	Name      string   `json:"name"`
	Phone     string   `json:"phone"`
	Path      []string `json:"path"`
}

// UpsertCarrier registers a carrier identified by (name, phone). Registering
// the same pair again updates the vehicle fields in place.
func (s *Service) UpsertCarrier(name, phone string, vehicleMake, vehicleModel *string) (uint, error) {
	name = cities.Normalize(name)
	if name == "" {
		return 0, &ValidationError{Message: "carrier name is required"}
	}

	var id uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		carrier := models.Carrier{
			Name:         name,
			Phone:        phone,
			VehicleMake:  vehicleMake,
			VehicleModel: vehicleModel,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}, {Name: "phone"}},
			DoUpdates: clause.AssignmentColumns([]string{"vehicle_make", "vehicle_model", "updated_at"}),
		}).Create(&carrier).Error; err != nil {
			return err
		}

		var existing models.Carrier
		if err := tx.Where("name = ? AND phone = ?", name, phone).First(&existing).Error; err != nil {
			return err
		}
		id = existing.ID
		return nil
	})
	return id, err
}

// LinkCarrierGroup upserts the (carrier, group) link. When no default
// variant is given and the group has exactly one active variant, that
// variant becomes the default; otherwise the link matches any active
// variant of the group.
func (s *Service) LinkCarrierGroup(carrierID, groupID uint, defaultVariantID *uint) (uint, *uint, error) {
	var linkID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if defaultVariantID == nil {
			var variantIDs []uint
			if err := tx.Model(&models.RouteVariant{}).
				Where("group_id = ? AND is_active = ?", groupID, true).
				Pluck("id", &variantIDs).Error; err != nil {
				return err
			}
			if len(variantIDs) == 1 {
				defaultVariantID = &variantIDs[0]
			}
		}

		link := models.CarrierGroupLink{
			CarrierID:        carrierID,
			GroupID:          groupID,
			DefaultVariantID: defaultVariantID,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "carrier_id"}, {Name: "group_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"default_variant_id", "updated_at"}),
		}).Create(&link).Error; err != nil {
			if isForeignKeyViolation(err) {
				return &NotFoundError{Message: "carrier or group not found"}
			}
			return err
		}

		var existing models.CarrierGroupLink
		if err := tx.Where("carrier_id = ? AND group_id = ?", carrierID, groupID).First(&existing).Error; err != nil {
			return err
		}
		linkID = existing.ID
		return nil
	})
	return linkID, defaultVariantID, err
}

// matchRow is one qualifying (carrier, variant, seq range) combination.
type matchRow struct {
	CarrierID uint
	Name      string
	Phone     string
	VariantID uint
	StartSeq  int
	EndSeq    int
}

// SearchCarriers finds carriers able to serve the directional
// origin→destination request: the origin stop must precede the destination
// stop within a single active variant, and the carrier's group link must
// either have no default variant or default to exactly that variant.
// Reversing the arguments does not reuse a match.
func (s *Service) SearchCarriers(origin, destination string) ([]CarrierMatch, error) {
	o, d := cities.Normalize(origin), cities.Normalize(destination)
	if o == "" || d == "" {
		return nil, &ValidationError{Message: "origin and destination are required"}
	}

	var rows []matchRow
	err := s.db.Table("route_variant_stops so").
		Select("DISTINCT c.id AS carrier_id, c.name, c.phone, rv.id AS variant_id, so.seq AS start_seq, sd.seq AS end_seq").
		Joins("JOIN route_variant_stops sd ON sd.variant_id = so.variant_id AND sd.seq > so.seq").
		Joins("JOIN route_variants rv ON rv.id = so.variant_id").
		Joins("JOIN carrier_group_links cgl ON cgl.group_id = rv.group_id").
		Joins("JOIN carriers c ON c.id = cgl.carrier_id").
		Where("lower(so.city) = lower(?) AND lower(sd.city) = lower(?)", o, d).
		Where("rv.is_active = ?", true).
		Where("cgl.default_variant_id IS NULL OR cgl.default_variant_id = rv.id").
		Order("carrier_id, variant_id, start_seq").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	matches := make([]CarrierMatch, 0, len(rows))
	seen := make(map[string]bool)
	for _, row := range rows {
		var stops []models.RouteVariantStop
		if err := s.db.Where("variant_id = ? AND seq BETWEEN ? AND ?", row.VariantID, row.StartSeq, row.EndSeq).
			Order("seq").Find(&stops).Error; err != nil {
			return nil, err
		}
		path := make([]string, len(stops))
		for i, st := range stops {
			path[i] = st.City
		}

		key := dedupeKey(row.CarrierID, path)
		if seen[key] {
			continue
		}
		seen[key] = true
		matches = append(matches, CarrierMatch{
			CarrierID: row.CarrierID,
			Name:      row.Name,
			Phone:     row.Phone,
			Path:      path,
		})
	}
	return matches, nil
}

func dedupeKey(carrierID uint, path []string) string {
	key := fmt.Sprintf("%d", carrierID)
	for _, city := range path {
		key += "|" + city
	}
	return key
}

// GetCarrier loads a carrier by id.
func (s *Service) GetCarrier(id uint) (*models.Carrier, error) {
	var carrier models.Carrier
	if err := s.db.First(&carrier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "Carrier not found"}
		}
		return nil, err
	}
	return &carrier, nil
}
