package shipment

import (
	"context"
	"time"
)

// Repository defines the interface for shipment repository operations
type Repository interface {
	Create(ctx context.Context, shipment *Shipment) error
	GetByID(ctx context.Context, shipmentID int64) (*Shipment, error)
	List(ctx context.Context, filter *Filter) ([]*Shipment, error)
	UpdateStatus(ctx context.Context, shipmentID int64, status ShipmentStatus, actualDeliveryAt *time.Time) (*Shipment, error)
	Count(ctx context.Context) (int, error)
}

// Filter represents filtering options for listing shipments
type Filter struct {
	Status        *ShipmentStatus
	Code          string
	SourceID      *int64
	DestinationID *int64

	// Search matches code, product id or product name, case-insensitively
	Search string
}
