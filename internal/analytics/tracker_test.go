package analytics

import (
	"context"
	"testing"
	"time"

	"supply-chain-viz/internal/domain/dashboard"
	"supply-chain-viz/internal/domain/shipment"
	"supply-chain-viz/internal/infrastructure/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_RefreshNotifiesListeners(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewShipmentRepository()
	tracker := NewTracker(repo, NewCalculator(10, true), func() time.Time { return referenceNow })

	var received []dashboard.KPI
	tracker.OnChange(func(kpi dashboard.KPI) {
		received = append(received, kpi)
	})

	require.NoError(t, repo.Create(ctx, newShipment(10, shipment.StatusDelayed)))
	kpi, err := tracker.Refresh(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, kpi.TotalShipments)
	require.Len(t, received, 1)
	assert.Equal(t, 1, received[0].DelayedCount)
}

func TestTracker_SnapshotIsCachedUntilRefresh(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewShipmentRepository()
	tracker := NewTracker(repo, NewCalculator(10, true), func() time.Time { return referenceNow })

	first, err := tracker.Snapshot(ctx)
	require.NoError(t, err)
	assert.Zero(t, first.TotalShipments)

	require.NoError(t, repo.Create(ctx, newShipment(10, shipment.StatusPending)))

	cached, err := tracker.Snapshot(ctx)
	require.NoError(t, err)
	assert.Zero(t, cached.TotalShipments)

	_, err = tracker.Refresh(ctx)
	require.NoError(t, err)

	fresh, err := tracker.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.TotalShipments)
}

func TestTracker_SnapshotRecomputesOnMonthRollover(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewShipmentRepository()
	now := referenceNow
	tracker := NewTracker(repo, NewCalculator(3, true), func() time.Time { return now })

	_, err := tracker.Refresh(ctx)
	require.NoError(t, err)

	now = time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC)
	kpi, err := tracker.Snapshot(ctx)
	require.NoError(t, err)

	require.Len(t, kpi.ShipmentsOverTime, 3)
	assert.Equal(t, time.November, kpi.ShipmentsOverTime[2].Month)
}

func TestTracker_RefreshFailsOnCancelledContext(t *testing.T) {
	tracker := NewTracker(memory.NewShipmentRepository(), NewCalculator(10, true), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tracker.Refresh(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
