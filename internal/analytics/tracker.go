package analytics

import (
	"context"
	"fmt"
	"sync"
	"time"

	"supply-chain-viz/internal/domain/dashboard"
	"supply-chain-viz/internal/domain/shipment"
)

// Tracker caches the latest KPI and recomputes it whenever shipments change.
// The cached value and its ByStatus map must be treated as read-only.
type Tracker struct {
	repo shipment.Repository
	calc *Calculator
	now  func() time.Time

	// refreshMu serializes recomputation so an older snapshot never overwrites a newer one
	refreshMu sync.Mutex

	mu        sync.RWMutex
	current   dashboard.KPI
	ready     bool
	listeners []func(dashboard.KPI)
}

func NewTracker(repo shipment.Repository, calc *Calculator, now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{
		repo: repo,
		calc: calc,
		now:  now,
	}
}

// Refresh recomputes the KPI from the full shipment collection and notifies listeners.
func (t *Tracker) Refresh(ctx context.Context) (dashboard.KPI, error) {
	t.refreshMu.Lock()
	defer t.refreshMu.Unlock()

	shipments, err := t.repo.List(ctx, nil)
	if err != nil {
		return dashboard.KPI{}, fmt.Errorf("failed to load shipments for KPI: %w", err)
	}

	kpi := t.calc.Compute(shipments, t.now())

	t.mu.Lock()
	t.current = kpi
	t.ready = true
	listeners := make([]func(dashboard.KPI), len(t.listeners))
	copy(listeners, t.listeners)
	t.mu.Unlock()

	for _, listener := range listeners {
		listener(kpi)
	}

	return kpi, nil
}

// Snapshot returns the cached KPI, recomputing it first when nothing is cached yet
// or the calendar month rolled over since the last computation.
func (t *Tracker) Snapshot(ctx context.Context) (dashboard.KPI, error) {
	t.mu.RLock()
	current, ready := t.current, t.ready
	t.mu.RUnlock()

	if ready && sameMonth(current.ComputedAt, t.now()) {
		return current, nil
	}
	return t.Refresh(ctx)
}

// OnChange registers a callback invoked after every recomputation.
func (t *Tracker) OnChange(listener func(dashboard.KPI)) {
	if listener == nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.listeners = append(t.listeners, listener)
}

func sameMonth(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year() && a.Month() == b.Month()
}
