package shipment

import (
	appErrors "supply-chain-viz/pkg/errors"
)

var (
	ErrShipmentNotFound      = appErrors.NewAppError(appErrors.CodeNotFound, "shipment not found", nil)
	ErrShipmentAlreadyExists = appErrors.NewAppError(appErrors.CodeConflict, "shipment code already exists", nil)
)
