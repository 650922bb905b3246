package shipment

import (
	"strings"
	"time"

	"supply-chain-viz/internal/domain/facility"
)

// ShipmentStatus is asserted by the client; there are no enforced transitions.
type ShipmentStatus string

const (
	StatusPending    ShipmentStatus = "pending"
	StatusProcessing ShipmentStatus = "processing"
	StatusInTransit  ShipmentStatus = "in_transit"
	StatusDelivered  ShipmentStatus = "delivered"
	StatusOnTime     ShipmentStatus = "on_time"
	StatusDelayed    ShipmentStatus = "delayed"
	StatusCritical   ShipmentStatus = "critical"
)

// Statuses lists every accepted status in display order
var Statuses = []ShipmentStatus{
	StatusPending,
	StatusProcessing,
	StatusInTransit,
	StatusDelivered,
	StatusOnTime,
	StatusDelayed,
	StatusCritical,
}

func (s ShipmentStatus) IsValid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsDelayed covers both the delayed and critical buckets
func (s ShipmentStatus) IsDelayed() bool {
	return s == StatusDelayed || s == StatusCritical
}

// IsCompleted reports a terminal delivered state
func (s ShipmentStatus) IsCompleted() bool {
	return s == StatusDelivered || s == StatusOnTime
}

// ParseStatus normalizes "In-Transit", "in transit" and "in_transit" to the same value.
func ParseStatus(raw string) (ShipmentStatus, bool) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)

	status := ShipmentStatus(normalized)
	return status, status.IsValid()
}

// Shipment represents goods moving between two points
type Shipment struct {
	ID   int64
	Code string

	// Goods
	ProductID   string
	ProductName string

	// Route. IDs are set when the endpoint is a known facility.
	SourceID      *int64
	DestinationID *int64
	Source        facility.Location
	Destination   facility.Location

	Cost float64

	// Timing
	ETA              time.Time
	DepartedAt       *time.Time
	ActualDeliveryAt *time.Time

	Status ShipmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TrendDate is the date a shipment is bucketed under in monthly trends.
func (s *Shipment) TrendDate() time.Time {
	if s.DepartedAt != nil {
		return *s.DepartedAt
	}
	return s.CreatedAt
}

// IsOnTime reports whether the shipment counts as an on-time delivery.
// In strict mode a delivered shipment needs an actual delivery time at or before its ETA;
// otherwise the delivered status alone is enough. on_time is always trusted.
func (s *Shipment) IsOnTime(strict bool) bool {
	switch s.Status {
	case StatusOnTime:
		return true
	case StatusDelivered:
		if !strict {
			return true
		}
		return s.ActualDeliveryAt != nil && !s.ActualDeliveryAt.After(s.ETA)
	default:
		return false
	}
}

// Clone returns a deep copy so callers never share pointers with the store.
func (s *Shipment) Clone() *Shipment {
	if s == nil {
		return nil
	}
	c := *s
	c.SourceID = cloneID(s.SourceID)
	c.DestinationID = cloneID(s.DestinationID)
	c.DepartedAt = cloneTime(s.DepartedAt)
	c.ActualDeliveryAt = cloneTime(s.ActualDeliveryAt)
	return &c
}

func cloneID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
