package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"freight_dispatch/internal/models"
)

// newTestService opens a fresh in-memory database per test. A single pooled
// connection keeps every query on the same :memory: instance, and the
// externally maintained stats view is stubbed as a plain table.
func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.RouteGroup{},
		&models.RouteVariant{},
		&models.RouteVariantStop{},
		&models.RouteVariantSegment{},
		&models.Carrier{},
		&models.CarrierGroupLink{},
		&models.Shipment{},
		&models.ShipmentStop{},
	))

	require.NoError(t, db.Exec(`CREATE TABLE mv_group_stats (
		city_a TEXT, city_b TEXT,
		trips INTEGER, drivers INTEGER,
		avg_price REAL, min_price REAL, max_price REAL, total_price REAL
	)`).Error)

	return New(db)
}

// mustVariant creates a group for the endpoint pair plus a variant over the
// given path, returning both ids.
func mustVariant(t *testing.T, svc *Service, origin, destination, path string) (groupID, variantID uint) {
	t.Helper()

	groupID, err := svc.EnsureGroup(origin, destination)
	require.NoError(t, err)

	variantID, err = svc.CreateVariant(groupID, nil, path)
	require.NoError(t, err)
	return groupID, variantID
}

// variantStops reads a variant's stops ordered by seq.
func variantStops(t *testing.T, svc *Service, variantID uint) []models.RouteVariantStop {
	t.Helper()

	var stops []models.RouteVariantStop
	require.NoError(t, svc.db.Where("variant_id = ?", variantID).Order("seq").Find(&stops).Error)
	return stops
}
