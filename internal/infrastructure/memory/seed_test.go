package memory

import (
	"context"
	"testing"
	"time"

	"supply-chain-viz/internal/domain/facility"
	"supply-chain-viz/internal/domain/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	facilities := NewFacilityRepository()
	shipments := NewShipmentRepository()
	trends := NewTrendRepository()
	now := time.Date(2026, time.October, 17, 9, 0, 0, 0, time.UTC)

	require.NoError(t, Seed(ctx, facilities, shipments, trends, now, 10))

	all, err := facilities.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 9)
	for _, kind := range facility.Types {
		k := kind
		byType, err := facilities.List(ctx, &facility.Filter{Type: &k})
		require.NoError(t, err)
		assert.Len(t, byType, 3, "type %s", kind)
	}

	list, err := shipments.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "SHP-1001", list[0].Code)
	assert.Equal(t, shipment.StatusOnTime, list[0].Status)
	assert.Equal(t, shipment.StatusDelayed, list[2].Status)

	source, err := facilities.GetByID(ctx, *list[0].SourceID)
	require.NoError(t, err)
	assert.Equal(t, "Supplier A", source.Name)
	assert.Equal(t, source.Location, list[0].Source)

	points, err := trends.List(ctx)
	require.NoError(t, err)
	require.Len(t, points, 10)
	assert.Equal(t, time.January, points[0].Month)
	assert.Equal(t, 65, points[0].Count)
	assert.Equal(t, time.October, points[9].Month)
	assert.Equal(t, 88, points[9].Count)
}

func TestSeed_SkipsPopulatedRepositories(t *testing.T) {
	ctx := context.Background()
	facilities := NewFacilityRepository()
	shipments := NewShipmentRepository()
	trends := NewTrendRepository()
	now := time.Date(2026, time.October, 17, 9, 0, 0, 0, time.UTC)

	require.NoError(t, Seed(ctx, facilities, shipments, trends, now, 10))
	require.NoError(t, Seed(ctx, facilities, shipments, trends, now, 10))

	facilityCount, err := facilities.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9, facilityCount)

	shipmentCount, err := shipments.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, shipmentCount)

	points, err := trends.List(ctx)
	require.NoError(t, err)
	assert.Len(t, points, 10)
}

func TestSeed_SkipsWhenOnlyFacilitiesExist(t *testing.T) {
	ctx := context.Background()
	facilities := NewFacilityRepository()
	shipments := NewShipmentRepository()
	require.NoError(t, facilities.Create(ctx, &facility.Facility{Name: "Depot", Type: facility.TypeWarehouse}))

	require.NoError(t, Seed(ctx, facilities, shipments, NewTrendRepository(), time.Now(), 10))

	count, err := shipments.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
