package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"supply-chain-viz/internal/domain/facility"
)

// FacilityRepository keeps facilities in a map keyed by an auto-incrementing id
type FacilityRepository struct {
	mu         sync.RWMutex
	facilities map[int64]*facility.Facility
	nextID     int64
}

func NewFacilityRepository() *FacilityRepository {
	return &FacilityRepository{
		facilities: make(map[int64]*facility.Facility),
	}
}

var _ facility.Repository = (*FacilityRepository)(nil)

func (r *FacilityRepository) Create(ctx context.Context, f *facility.Facility) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	f.ID = r.nextID
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}

	stored := *f
	r.facilities[f.ID] = &stored
	return nil
}

func (r *FacilityRepository) GetByID(ctx context.Context, id int64) (*facility.Facility, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.facilities[id]
	if !ok {
		return nil, facility.ErrFacilityNotFound
	}

	found := *f
	return &found, nil
}

// List returns facilities ordered by id.
func (r *FacilityRepository) List(ctx context.Context, filter *facility.Filter) ([]*facility.Facility, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*facility.Facility, 0, len(r.facilities))
	for _, f := range r.facilities {
		if filter != nil && filter.Type != nil && f.Type != *filter.Type {
			continue
		}
		found := *f
		result = append(result, &found)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result, nil
}

func (r *FacilityRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.facilities), nil
}
