package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"supply-chain-viz/internal/domain/shipment"
)

// codeOffset makes generated codes start at SHP-1001
const codeOffset = 1000

// ShipmentRepository keeps shipments in a map keyed by an auto-incrementing id,
// with a secondary index on the upper-cased shipment code.
type ShipmentRepository struct {
	mu        sync.RWMutex
	shipments map[int64]*shipment.Shipment
	codes     map[string]int64
	nextID    int64
	now       func() time.Time
}

func NewShipmentRepository() *ShipmentRepository {
	return &ShipmentRepository{
		shipments: make(map[int64]*shipment.Shipment),
		codes:     make(map[string]int64),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

var _ shipment.Repository = (*ShipmentRepository)(nil)

func (r *ShipmentRepository) Create(ctx context.Context, s *shipment.Shipment) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if s.Code != "" {
		if _, exists := r.codes[codeKey(s.Code)]; exists {
			return shipment.ErrShipmentAlreadyExists
		}
	}

	r.nextID++
	s.ID = r.nextID
	if s.Code == "" {
		s.Code = r.generateCode(s.ID)
	}

	now := r.now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = s.CreatedAt
	if s.Status == "" {
		s.Status = shipment.StatusPending
	}

	r.shipments[s.ID] = s.Clone()
	r.codes[codeKey(s.Code)] = s.ID

	return nil
}

// generateCode skips over codes a client already claimed explicitly.
func (r *ShipmentRepository) generateCode(id int64) string {
	n := codeOffset + id
	for {
		code := fmt.Sprintf("SHP-%d", n)
		if _, taken := r.codes[codeKey(code)]; !taken {
			return code
		}
		n++
	}
}

func (r *ShipmentRepository) GetByID(ctx context.Context, shipmentID int64) (*shipment.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.shipments[shipmentID]
	if !ok {
		return nil, shipment.ErrShipmentNotFound
	}
	return s.Clone(), nil
}

// List returns matching shipments in insertion order.
func (r *ShipmentRepository) List(ctx context.Context, filter *shipment.Filter) ([]*shipment.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*shipment.Shipment, 0, len(r.shipments))
	for _, s := range r.shipments {
		if !matches(s, filter) {
			continue
		}
		result = append(result, s.Clone())
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result, nil
}

func (r *ShipmentRepository) UpdateStatus(ctx context.Context, shipmentID int64, status shipment.ShipmentStatus, actualDeliveryAt *time.Time) (*shipment.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.shipments[shipmentID]
	if !ok {
		return nil, shipment.ErrShipmentNotFound
	}

	s.Status = status
	if actualDeliveryAt != nil {
		delivered := *actualDeliveryAt
		s.ActualDeliveryAt = &delivered
	}
	s.UpdatedAt = r.now()

	return s.Clone(), nil
}

func (r *ShipmentRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.shipments), nil
}

func matches(s *shipment.Shipment, filter *shipment.Filter) bool {
	if filter == nil {
		return true
	}
	if filter.Status != nil && s.Status != *filter.Status {
		return false
	}
	if filter.Code != "" && codeKey(s.Code) != codeKey(filter.Code) {
		return false
	}
	if filter.SourceID != nil && (s.SourceID == nil || *s.SourceID != *filter.SourceID) {
		return false
	}
	if filter.DestinationID != nil && (s.DestinationID == nil || *s.DestinationID != *filter.DestinationID) {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		haystack := strings.ToLower(s.Code + " " + s.ProductID + " " + s.ProductName)
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}

func codeKey(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
