package commands

import (
	"context"
	"errors"
	"fmt"

	"lastmile/internal/core/ports"
	"lastmile/internal/pkg/errs"
)

// UpdateDriverLocationResult reports a completed driver location update.
type UpdateDriverLocationResult struct {
	DriverID int64   `json:"driverId"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}

// UpdateDriverLocationCommandHandler geocodes an address and moves the driver
// there.
type UpdateDriverLocationCommandHandler struct {
	uowFactory DriverUoWFactory
	geocoder   ports.Geocoder
}

// NewUpdateDriverLocationCommandHandler creates a handler for driver location updates.
func NewUpdateDriverLocationCommandHandler(uowFactory DriverUoWFactory, geocoder ports.Geocoder) UpdateDriverLocationCommandHandler {
	return UpdateDriverLocationCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
	}
}

// Handle processes the location update command.
// Returns ErrDriverNotFound when the driver does not exist and
// ErrGeocodeFailed when the address does not resolve.
func (h UpdateDriverLocationCommandHandler) Handle(ctx context.Context, command UpdateDriverLocationCommand) (UpdateDriverLocationResult, error) {
	if err := command.Validate(); err != nil {
		return UpdateDriverLocationResult{}, err
	}

	location, err := h.geocoder.Geocode(ctx, command.Address())
	if err != nil {
		return UpdateDriverLocationResult{}, fmt.Errorf("%w: %w", ErrGeocodeFailed, err)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateDriverLocationResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	aggregate, err := driverRepo.Get(ctx, command.DriverID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return UpdateDriverLocationResult{}, ErrDriverNotFound
	}
	if err != nil {
		return UpdateDriverLocationResult{}, err
	}

	if err = aggregate.MoveTo(location); err != nil {
		return UpdateDriverLocationResult{}, err
	}

	if err = driverRepo.Update(ctx, aggregate); err != nil {
		return UpdateDriverLocationResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return UpdateDriverLocationResult{}, err
	}

	return UpdateDriverLocationResult{
		DriverID: aggregate.ID(),
		Lat:      location.Lat(),
		Lng:      location.Lng(),
	}, nil
}
