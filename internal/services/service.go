// Package services implements the route, carrier and shipment operations on
// top of GORM. Every exported method runs in its own transaction: it either
// commits as a whole or rolls back, so partially written stops or segments
// are never visible to other requests.
package services

import (
	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Service {
	return &Service{db: db}
}
