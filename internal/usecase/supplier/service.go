package supplier

import (
	"context"

	domainFacility "supply-chain-viz/internal/domain/facility"
	"supply-chain-viz/internal/logger"
	appErrors "supply-chain-viz/pkg/errors"
	"supply-chain-viz/pkg/utils"

	"go.uber.org/zap"
)

// Service implements supplier and facility use cases
type Service struct {
	facilityRepo domainFacility.Repository
}

func NewService(facilityRepo domainFacility.Repository) *Service {
	return &Service{facilityRepo: facilityRepo}
}

func (s *Service) CreateSupplier(ctx context.Context, req *CreateSupplierRequest) (*SupplierResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewValidationError("Invalid supplier data", err)
	}

	name := utils.SanitizeString(req.Name)
	if len(name) < 2 {
		return nil, appErrors.NewValidationError("Invalid supplier data", utils.FieldErrors{{
			Field:   "name",
			Message: "name must contain at least 2 characters of text",
		}})
	}

	kind := domainFacility.TypeSupplier
	if req.Type != "" {
		kind, _ = domainFacility.ParseType(req.Type)
	}

	f := &domainFacility.Facility{
		Name: name,
		Location: domainFacility.Location{
			Lat: req.Location.Lat.Float64(),
			Lng: req.Location.Lng.Float64(),
		},
		Type:      kind,
		Rating:    domainFacility.DefaultRating,
		CostIndex: domainFacility.DefaultCostIndex,
	}
	if req.Rating != nil {
		f.Rating = req.Rating.Int()
	}
	if req.CostIndex != nil {
		f.CostIndex = req.CostIndex.Float64()
	}

	if err := s.facilityRepo.Create(ctx, f); err != nil {
		return nil, err
	}

	logger.Info("Supplier created",
		zap.Int64("supplier_id", f.ID),
		zap.String("type", string(f.Type)),
		zap.String("event", "supplier_created"),
	)

	return ToSupplierResponse(f), nil
}

func (s *Service) GetSupplier(ctx context.Context, id int64) (*SupplierResponse, error) {
	f, err := s.facilityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToSupplierResponse(f), nil
}

func (s *Service) ListSuppliers(ctx context.Context, req *SupplierFilterRequest) ([]SupplierResponse, error) {
	if req != nil {
		if err := utils.ValidateStruct(req); err != nil {
			return nil, appErrors.NewValidationError("Invalid supplier filter", err)
		}
	}

	facilities, err := s.facilityRepo.List(ctx, ToDomainFilter(req))
	if err != nil {
		return nil, err
	}

	result := make([]SupplierResponse, 0, len(facilities))
	for _, f := range facilities {
		result = append(result, *ToSupplierResponse(f))
	}
	return result, nil
}

// ListFacilities returns every facility as a map marker.
func (s *Service) ListFacilities(ctx context.Context) ([]FacilityResponse, error) {
	facilities, err := s.facilityRepo.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	result := make([]FacilityResponse, 0, len(facilities))
	for _, f := range facilities {
		result = append(result, ToFacilityResponse(f))
	}
	return result, nil
}
