package events

import (
	"context"
	"time"

	"supply-chain-viz/internal/domain/shipment"
)

//go:generate mockgen -destination=mocks/mock_publisher.go -package=mocks supply-chain-viz/internal/events Publisher

type Type string

const (
	TypeShipmentCreated       Type = "shipment.created"
	TypeShipmentStatusChanged Type = "shipment.status_changed"
)

// Topic suffixes appended to the configured prefix
const (
	topicShipmentCreated = "shipments/created"
	topicShipmentStatus  = "shipments/status"
)

// ShipmentEvent is published after a shipment is created or its status changes
type ShipmentEvent struct {
	Type           Type                     `json:"type"`
	ShipmentID     int64                    `json:"shipmentId"`
	Code           string                   `json:"code"`
	ProductID      string                   `json:"productId"`
	Status         shipment.ShipmentStatus  `json:"status"`
	PreviousStatus *shipment.ShipmentStatus `json:"previousStatus,omitempty"`
	Cost           float64                  `json:"cost"`
	ETA            time.Time                `json:"eta"`
	OccurredAt     time.Time                `json:"occurredAt"`
}

// Publisher delivers shipment events to downstream consumers
type Publisher interface {
	Publish(ctx context.Context, event *ShipmentEvent) error
	Close() error
}

func NewShipmentCreated(s *shipment.Shipment, at time.Time) *ShipmentEvent {
	return &ShipmentEvent{
		Type:       TypeShipmentCreated,
		ShipmentID: s.ID,
		Code:       s.Code,
		ProductID:  s.ProductID,
		Status:     s.Status,
		Cost:       s.Cost,
		ETA:        s.ETA,
		OccurredAt: at,
	}
}

func NewStatusChanged(s *shipment.Shipment, previous shipment.ShipmentStatus, at time.Time) *ShipmentEvent {
	event := NewShipmentCreated(s, at)
	event.Type = TypeShipmentStatusChanged
	event.PreviousStatus = &previous
	return event
}

// NoopPublisher discards events when no broker is configured
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, *ShipmentEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
