package memory

import (
	"context"
	"sort"
	"sync"

	"supply-chain-viz/internal/domain/dashboard"
)

// TrendRepository holds the historical monthly baseline, ordered chronologically
type TrendRepository struct {
	mu     sync.RWMutex
	points []dashboard.TrendPoint
	nextID int64
}

func NewTrendRepository() *TrendRepository {
	return &TrendRepository{}
}

var _ dashboard.TrendRepository = (*TrendRepository)(nil)

func (r *TrendRepository) Add(ctx context.Context, point *dashboard.TrendPoint) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	point.ID = r.nextID
	r.points = append(r.points, *point)

	sort.SliceStable(r.points, func(i, j int) bool {
		a, b := r.points[i], r.points[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		return a.Month < b.Month
	})

	return nil
}

func (r *TrendRepository) List(ctx context.Context) ([]*dashboard.TrendPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*dashboard.TrendPoint, len(r.points))
	for i := range r.points {
		p := r.points[i]
		result[i] = &p
	}
	return result, nil
}
