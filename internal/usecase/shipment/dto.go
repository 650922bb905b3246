package shipment

import (
	"time"

	domainShipment "supply-chain-viz/internal/domain/shipment"
	"supply-chain-viz/internal/usecase/supplier"
	"supply-chain-viz/pkg/utils"
)

// Request DTOs

// CreateShipmentRequest takes each endpoint either as a facility id or as raw coordinates.
type CreateShipmentRequest struct {
	Code        string `json:"shipmentId" validate:"omitempty,max=32"`
	ProductID   string `json:"productId" validate:"required,max=64"`
	ProductName string `json:"productName" validate:"omitempty,max=120"`

	SourceID      *utils.FlexInt            `json:"sourceId" validate:"required_without=Source"`
	Source        *supplier.LocationRequest `json:"source" validate:"required_without=SourceID"`
	DestinationID *utils.FlexInt            `json:"destinationId" validate:"required_without=Destination"`
	Destination   *supplier.LocationRequest `json:"destination" validate:"required_without=DestinationID"`

	Cost       *utils.FlexFloat `json:"cost" validate:"required,gte=0,max=1000000000"`
	ETA        *time.Time       `json:"eta" validate:"required"`
	DepartedAt *time.Time       `json:"departedAt" validate:"omitempty"`
	Status     string           `json:"status" validate:"omitempty,shipment_status"`
}

type UpdateStatusRequest struct {
	Status           string     `json:"status" validate:"required,shipment_status"`
	ActualDeliveryAt *time.Time `json:"actualDeliveryAt" validate:"omitempty"`
}

type ShipmentFilterRequest struct {
	Status        string `form:"status" validate:"omitempty,shipment_status"`
	Code          string `form:"code"`
	Search        string `form:"q" validate:"omitempty,max=100"`
	SourceID      *int64 `form:"sourceId"`
	DestinationID *int64 `form:"destinationId"`
}

// Response DTOs
type ShipmentResponse struct {
	ID          int64  `json:"id"`
	Code        string `json:"shipmentId"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`

	SourceID      *int64                    `json:"sourceId"`
	DestinationID *int64                    `json:"destinationId"`
	Source        supplier.LocationResponse `json:"source"`
	Destination   supplier.LocationResponse `json:"destination"`

	Cost float64 `json:"cost"`

	ETA              time.Time  `json:"eta"`
	DepartedAt       *time.Time `json:"departedAt"`
	ActualDeliveryAt *time.Time `json:"actualDeliveryAt"`

	Status    string `json:"status"`
	IsDelayed bool   `json:"isDelayed"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Conversion functions
func ToShipmentResponse(s *domainShipment.Shipment) *ShipmentResponse {
	if s == nil {
		return nil
	}
	return &ShipmentResponse{
		ID:               s.ID,
		Code:             s.Code,
		ProductID:        s.ProductID,
		ProductName:      s.ProductName,
		SourceID:         s.SourceID,
		DestinationID:    s.DestinationID,
		Source:           supplier.ToLocationResponse(s.Source),
		Destination:      supplier.ToLocationResponse(s.Destination),
		Cost:             s.Cost,
		ETA:              s.ETA,
		DepartedAt:       s.DepartedAt,
		ActualDeliveryAt: s.ActualDeliveryAt,
		Status:           string(s.Status),
		IsDelayed:        s.Status.IsDelayed(),
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func ToDomainFilter(req *ShipmentFilterRequest) *domainShipment.Filter {
	if req == nil {
		return &domainShipment.Filter{}
	}

	filter := &domainShipment.Filter{
		Code:          utils.SanitizeCode(req.Code),
		SourceID:      req.SourceID,
		DestinationID: req.DestinationID,
		Search:        req.Search,
	}
	if req.Status != "" {
		status, _ := domainShipment.ParseStatus(req.Status)
		filter.Status = &status
	}
	return filter
}
