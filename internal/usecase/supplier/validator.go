package supplier

import (
	domainFacility "supply-chain-viz/internal/domain/facility"
	"supply-chain-viz/pkg/utils"

	"github.com/go-playground/validator/v10"
)

func init() {
	if err := utils.RegisterValidation("facility_type", validateFacilityType); err != nil {
		panic(err)
	}
}

func validateFacilityType(fl validator.FieldLevel) bool {
	_, ok := domainFacility.ParseType(fl.Field().String())
	return ok
}
