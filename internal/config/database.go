package config

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"freight_dispatch/internal/models"
)

// ConnectDB opens the GORM connection described by cfg and migrates the
// schema. mv_group_stats is maintained externally and deliberately left out
// of the migration set.
func ConnectDB(cfg *Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode, cfg.DBTimezone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("auto-migration failed: %v", err)
	}

	return db
}

// Migrate applies the schema for all owned entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.RouteGroup{},
		&models.RouteVariant{},
		&models.RouteVariantStop{},
		&models.RouteVariantSegment{},
		&models.Carrier{},
		&models.CarrierGroupLink{},
		&models.Shipment{},
		&models.ShipmentStop{},
	)
}
