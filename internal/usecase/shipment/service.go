package shipment

import (
	"context"
	"time"

	"supply-chain-viz/internal/analytics"
	domainFacility "supply-chain-viz/internal/domain/facility"
	domainShipment "supply-chain-viz/internal/domain/shipment"
	"supply-chain-viz/internal/events"
	"supply-chain-viz/internal/logger"
	appErrors "supply-chain-viz/pkg/errors"
	"supply-chain-viz/pkg/utils"

	"go.uber.org/zap"
)

// Service implements shipment use cases
type Service struct {
	shipmentRepo domainShipment.Repository
	facilityRepo domainFacility.Repository
	tracker      *analytics.Tracker
	publisher    events.Publisher
	now          func() time.Time
}

// NewService creates a new shipment service
func NewService(
	shipmentRepo domainShipment.Repository,
	facilityRepo domainFacility.Repository,
	tracker *analytics.Tracker,
	publisher events.Publisher,
) *Service {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &Service{
		shipmentRepo: shipmentRepo,
		facilityRepo: facilityRepo,
		tracker:      tracker,
		publisher:    publisher,
		now:          time.Now,
	}
}

func (s *Service) CreateShipment(ctx context.Context, req *CreateShipmentRequest) (*ShipmentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewValidationError("Invalid shipment data", err)
	}

	source, err := resolveEndpoint(ctx, s.facilityRepo, "source", req.SourceID, req.Source)
	if err != nil {
		return nil, asValidationError(err)
	}
	destination, err := resolveEndpoint(ctx, s.facilityRepo, "destination", req.DestinationID, req.Destination)
	if err != nil {
		return nil, asValidationError(err)
	}

	productID := utils.SanitizeString(req.ProductID)
	if productID == "" {
		return nil, appErrors.NewValidationError("Invalid shipment data", utils.FieldErrors{{
			Field:   "productId",
			Message: "productId must contain text",
		}})
	}

	status := domainShipment.StatusPending
	if req.Status != "" {
		status, _ = domainShipment.ParseStatus(req.Status)
	}

	now := s.now()
	shipment := &domainShipment.Shipment{
		Code:          utils.SanitizeCode(req.Code),
		ProductID:     productID,
		ProductName:   utils.SanitizeString(req.ProductName),
		SourceID:      source.facilityID,
		DestinationID: destination.facilityID,
		Source:        source.location,
		Destination:   destination.location,
		Cost:          req.Cost.Float64(),
		ETA:           *req.ETA,
		DepartedAt:    req.DepartedAt,
		Status:        status,
		CreatedAt:     now,
	}
	if status.IsCompleted() {
		shipment.ActualDeliveryAt = &now
	}

	if err := s.shipmentRepo.Create(ctx, shipment); err != nil {
		return nil, err
	}

	logger.Info("Shipment created",
		zap.Int64("shipment_id", shipment.ID),
		zap.String("code", shipment.Code),
		zap.String("status", string(shipment.Status)),
		zap.String("event", "shipment_created"),
	)

	s.afterMutation(ctx, events.NewShipmentCreated(shipment, now))

	return ToShipmentResponse(shipment), nil
}

func (s *Service) GetShipment(ctx context.Context, id int64) (*ShipmentResponse, error) {
	shipment, err := s.shipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToShipmentResponse(shipment), nil
}

func (s *Service) ListShipments(ctx context.Context, req *ShipmentFilterRequest) ([]ShipmentResponse, error) {
	if req != nil {
		if err := utils.ValidateStruct(req); err != nil {
			return nil, appErrors.NewValidationError("Invalid shipment filter", err)
		}
	}

	shipments, err := s.shipmentRepo.List(ctx, ToDomainFilter(req))
	if err != nil {
		return nil, err
	}

	result := make([]ShipmentResponse, 0, len(shipments))
	for _, shipment := range shipments {
		result = append(result, *ToShipmentResponse(shipment))
	}
	return result, nil
}

// UpdateStatus records a client-asserted status. Any status may follow any other.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *UpdateStatusRequest) (*ShipmentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewValidationError("Invalid status update", err)
	}
	status, _ := domainShipment.ParseStatus(req.Status)

	current, err := s.shipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	actual := req.ActualDeliveryAt
	if actual == nil && status.IsCompleted() && current.ActualDeliveryAt == nil {
		actual = &now
	}

	updated, err := s.shipmentRepo.UpdateStatus(ctx, id, status, actual)
	if err != nil {
		return nil, err
	}

	logger.Info("Shipment status updated",
		zap.Int64("shipment_id", id),
		zap.String("from", string(current.Status)),
		zap.String("to", string(updated.Status)),
		zap.String("event", "shipment_status_updated"),
	)

	s.afterMutation(ctx, events.NewStatusChanged(updated, current.Status, now))

	return ToShipmentResponse(updated), nil
}

// afterMutation refreshes the KPI cache and publishes the event. The mutation is
// already committed, so failures here are logged and never returned.
func (s *Service) afterMutation(ctx context.Context, event *events.ShipmentEvent) {
	if s.tracker != nil {
		if _, err := s.tracker.Refresh(ctx); err != nil {
			logger.Error("Failed to refresh KPI",
				zap.Int64("shipment_id", event.ShipmentID),
				zap.Error(err),
			)
		}
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish shipment event",
			zap.String("type", string(event.Type)),
			zap.Int64("shipment_id", event.ShipmentID),
			zap.Error(err),
		)
	}
}

func asValidationError(err error) error {
	if _, ok := err.(utils.FieldErrors); ok {
		return appErrors.NewValidationError("Invalid shipment data", err)
	}
	return err
}
