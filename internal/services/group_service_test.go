package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freight_dispatch/internal/models"
)

func TestEnsureGroupSymmetricAndIdempotent(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.EnsureGroup("Moscow", "Kazan")
	require.NoError(t, err)

	swapped, err := svc.EnsureGroup("Kazan", "Moscow")
	require.NoError(t, err)
	assert.Equal(t, first, swapped)

	repeated, err := svc.EnsureGroup("  Moscow ", "Kazan")
	require.NoError(t, err)
	assert.Equal(t, first, repeated)

	var count int64
	require.NoError(t, svc.db.Model(&models.RouteGroup{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestEnsureGroupCanonicalOrder(t *testing.T) {
	svc := newTestService(t)

	id, err := svc.EnsureGroup("Ufa", "Kazan")
	require.NoError(t, err)

	var group models.RouteGroup
	require.NoError(t, svc.db.First(&group, id).Error)
	assert.Equal(t, "Kazan", group.CityA)
	assert.Equal(t, "Ufa", group.CityB)
}

func TestEnsureGroupCaseInsensitiveOrdering(t *testing.T) {
	svc := newTestService(t)

	// "moscow" < "Ufa" case-insensitively even though 'U' < 'm' in ASCII
	id, err := svc.EnsureGroup("Ufa", "moscow")
	require.NoError(t, err)

	var group models.RouteGroup
	require.NoError(t, svc.db.First(&group, id).Error)
	assert.Equal(t, "moscow", group.CityA)
	assert.Equal(t, "Ufa", group.CityB)
}

func TestGetGroupDetail(t *testing.T) {
	svc := newTestService(t)
	groupID, variantID := mustVariant(t, svc, "Moscow", "Ufa", "Moscow - Kazan - Ufa")

	carrierID, err := svc.UpsertCarrier("Ivanov", "+7 900", nil, nil)
	require.NoError(t, err)
	_, _, err = svc.LinkCarrierGroup(carrierID, groupID, nil)
	require.NoError(t, err)

	detail, err := svc.GetGroupDetail(groupID)
	require.NoError(t, err)
	assert.Equal(t, groupID, detail.Group.ID)
	require.Len(t, detail.Variants, 1)
	assert.Equal(t, variantID, detail.Variants[0].ID)
	require.Len(t, detail.Variants[0].Stops, 3)
	assert.Equal(t, "Kazan", detail.Variants[0].Stops[1].City)
	require.Len(t, detail.CarrierLinks, 1)
	assert.Equal(t, carrierID, detail.CarrierLinks[0].CarrierID)
}

func TestGetGroupDetailNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetGroupDetail(42)
	assert.True(t, IsNotFound(err))
}

func TestListGroupsJoinsStats(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.EnsureGroup("Moscow", "Kazan")
	require.NoError(t, err)
	_, err = svc.EnsureGroup("Samara", "Ufa")
	require.NoError(t, err)

	require.NoError(t, svc.db.Exec(
		`INSERT INTO mv_group_stats (city_a, city_b, trips, drivers, avg_price, min_price, max_price, total_price)
		 VALUES ('kazan', 'moscow', 5, 2, 1000, 500, 1500, 5000)`).Error)

	rows, err := svc.ListGroups()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// ordered by canonical pair: (Kazan, Moscow) before (Samara, Ufa)
	assert.Equal(t, "Kazan", rows[0].CityA)
	assert.EqualValues(t, 5, rows[0].Trips)
	assert.EqualValues(t, 2, rows[0].Drivers)
	require.NotNil(t, rows[0].AvgPrice)
	assert.EqualValues(t, 1000, *rows[0].AvgPrice)

	assert.EqualValues(t, 0, rows[1].Trips)
	assert.Nil(t, rows[1].AvgPrice)
}

func TestDeleteGroupCascades(t *testing.T) {
	svc := newTestService(t)
	groupID, variantID := mustVariant(t, svc, "Moscow", "Ufa", "Moscow - Kazan - Ufa")

	carrierID, err := svc.UpsertCarrier("Ivanov", "+7 900", nil, nil)
	require.NoError(t, err)
	_, _, err = svc.LinkCarrierGroup(carrierID, groupID, nil)
	require.NoError(t, err)

	// a derived segment whose parent variant lives in this group
	derived, err := svc.AutoDerive("Moscow", "Kazan")
	require.NoError(t, err)
	assert.Equal(t, variantID, derived.ParentVariantID)

	require.NoError(t, svc.DeleteGroup(groupID))

	for model, label := range map[interface{}]string{
		&models.RouteVariant{}:     "variants",
		&models.RouteVariantStop{}: "stops",
		&models.CarrierGroupLink{}: "links",
	} {
		var count int64
		require.NoError(t, svc.db.Model(model).Count(&count).Error)
		assert.Zero(t, count, label)
	}

	var segments int64
	require.NoError(t, svc.db.Model(&models.RouteVariantSegment{}).Count(&segments).Error)
	assert.Zero(t, segments)

	// carriers survive group deletion
	var carriers int64
	require.NoError(t, svc.db.Model(&models.Carrier{}).Count(&carriers).Error)
	assert.EqualValues(t, 1, carriers)
}

func TestDeleteGroupNotFound(t *testing.T) {
	svc := newTestService(t)

	err := svc.DeleteGroup(99)
	assert.True(t, IsNotFound(err))
}
