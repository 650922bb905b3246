package facility

import (
	appErrors "supply-chain-viz/pkg/errors"
)

var (
	ErrFacilityNotFound = appErrors.NewAppError(appErrors.CodeNotFound, "facility not found", nil)
)
