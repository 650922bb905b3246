package supplier

import (
	"time"

	domainFacility "supply-chain-viz/internal/domain/facility"
	"supply-chain-viz/pkg/utils"
)

// Request DTOs
type LocationRequest struct {
	Lat *utils.FlexFloat `json:"lat" validate:"required,latitude"`
	Lng *utils.FlexFloat `json:"lng" validate:"required,longitude"`
}

type CreateSupplierRequest struct {
	Name      string           `json:"name" validate:"required,min=2,max=120"`
	Location  *LocationRequest `json:"location" validate:"required"`
	Type      string           `json:"type" validate:"omitempty,facility_type"`
	Rating    *utils.FlexInt   `json:"rating" validate:"omitempty,min=1,max=5"`
	CostIndex *utils.FlexFloat `json:"costIndex" validate:"omitempty,gt=0"`
}

type SupplierFilterRequest struct {
	Type string `form:"type" validate:"omitempty,facility_type"`
}

// Response DTOs
type LocationResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type SupplierResponse struct {
	ID        int64            `json:"id"`
	Name      string           `json:"name"`
	Location  LocationResponse `json:"location"`
	Type      string           `json:"type"`
	Rating    int              `json:"rating"`
	CostIndex float64          `json:"costIndex"`
	CreatedAt time.Time        `json:"createdAt"`
}

// FacilityResponse is the map marker projection of a facility
type FacilityResponse struct {
	ID       int64            `json:"id"`
	Name     string           `json:"name"`
	Location LocationResponse `json:"location"`
	Type     string           `json:"type"`
}

// Conversion functions
func ToLocationResponse(l domainFacility.Location) LocationResponse {
	return LocationResponse{Lat: l.Lat, Lng: l.Lng}
}

func ToSupplierResponse(f *domainFacility.Facility) *SupplierResponse {
	if f == nil {
		return nil
	}
	return &SupplierResponse{
		ID:        f.ID,
		Name:      f.Name,
		Location:  ToLocationResponse(f.Location),
		Type:      string(f.Type),
		Rating:    f.Rating,
		CostIndex: f.CostIndex,
		CreatedAt: f.CreatedAt,
	}
}

func ToFacilityResponse(f *domainFacility.Facility) FacilityResponse {
	return FacilityResponse{
		ID:       f.ID,
		Name:     f.Name,
		Location: ToLocationResponse(f.Location),
		Type:     string(f.Type),
	}
}

func ToDomainFilter(req *SupplierFilterRequest) *domainFacility.Filter {
	if req == nil || req.Type == "" {
		return &domainFacility.Filter{}
	}
	t, _ := domainFacility.ParseType(req.Type)
	return &domainFacility.Filter{Type: &t}
}
