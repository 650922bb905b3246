package shipment

import (
	"context"
	"errors"
	"fmt"

	domainFacility "supply-chain-viz/internal/domain/facility"
	domainShipment "supply-chain-viz/internal/domain/shipment"
	"supply-chain-viz/internal/usecase/supplier"
	"supply-chain-viz/pkg/utils"

	"github.com/go-playground/validator/v10"
)

func init() {
	if err := utils.RegisterValidation("shipment_status", validateShipmentStatus); err != nil {
		panic(err)
	}
}

func validateShipmentStatus(fl validator.FieldLevel) bool {
	_, ok := domainShipment.ParseStatus(fl.Field().String())
	return ok
}

// endpoint is one side of a route after resolution
type endpoint struct {
	facilityID *int64
	location   domainFacility.Location
}

// resolveEndpoint turns a facility id or raw coordinates into a location.
// A facility id wins when both are present.
func resolveEndpoint(
	ctx context.Context,
	facilityRepo domainFacility.Repository,
	field string,
	id *utils.FlexInt,
	loc *supplier.LocationRequest,
) (endpoint, error) {
	if id != nil {
		facilityID := int64(id.Int())
		f, err := facilityRepo.GetByID(ctx, facilityID)
		if err != nil {
			if errors.Is(err, domainFacility.ErrFacilityNotFound) {
				return endpoint{}, utils.FieldErrors{{
					Field:   field + "Id",
					Message: fmt.Sprintf("%sId %d does not reference a known facility", field, facilityID),
				}}
			}
			return endpoint{}, err
		}
		return endpoint{facilityID: &facilityID, location: f.Location}, nil
	}

	return endpoint{
		location: domainFacility.Location{
			Lat: loc.Lat.Float64(),
			Lng: loc.Lng.Float64(),
		},
	}, nil
}
