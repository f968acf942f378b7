package commands

import (
	"context"
	"errors"
	"fmt"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/order"
	"lastmile/internal/core/domain/services"
	"lastmile/internal/core/ports"
	"lastmile/internal/pkg/errs"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrSourceAddressMissing = errors.New("order has no source address")
	ErrGeocodeFailed        = errors.New("could not geocode address")
)

// AssignDriverResult reports a completed nearest-driver assignment.
type AssignDriverResult struct {
	OrderID        int64   `json:"orderId"`
	DriverID       int64   `json:"driverId"`
	DistanceMeters float64 `json:"distanceMeters"`
}

// AssignDriverCommandHandler orchestrates nearest-driver assignment.
//
// The driver is claimed with a conditional idle-to-enroute update rather than
// a plain write: two concurrent assignments can both observe the same idle
// driver, and only the claim that wins the conditional update keeps them. A
// lost claim moves on to the next-nearest candidate.
//
// Returns:
//   - ErrOrderNotFound / ErrSourceAddressMissing when the order cannot be dispatched
//   - ErrGeocodeFailed when the source address does not resolve
//   - services.ErrNoAvailableDrivers when no dispatchable driver exists or
//     every candidate was claimed by a concurrent assignment
type AssignDriverCommandHandler struct {
	uowFactory DispatchUoWFactory
	geocoder   ports.Geocoder
	dispatcher services.DriverDispatcher
}

// NewAssignDriverCommandHandler creates a handler for nearest-driver assignment.
func NewAssignDriverCommandHandler(
	uowFactory DispatchUoWFactory,
	geocoder ports.Geocoder,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
		dispatcher: services.NewDriverDispatcher(),
	}
}

// Handle processes the assignment command.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, command AssignDriverCommand) (AssignDriverResult, error) {
	if err := command.Validate(); err != nil {
		return AssignDriverResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignDriverResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	driverRepo := uow.DriverRepository()

	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return AssignDriverResult{}, ErrOrderNotFound
	}
	if err != nil {
		return AssignDriverResult{}, err
	}

	pickup, err := h.resolvePickup(ctx, aggregate)
	if err != nil {
		return AssignDriverResult{}, err
	}

	drivers, err := driverRepo.GetAllDispatchable(ctx)
	if err != nil {
		return AssignDriverResult{}, err
	}
	if len(drivers) == 0 {
		return AssignDriverResult{}, services.ErrNoAvailableDrivers
	}

	ranked, err := h.dispatcher.RankByDistance(pickup, drivers)
	if err != nil {
		return AssignDriverResult{}, err
	}

	claimed, err := h.claimFirst(ctx, driverRepo, ranked)
	if err != nil {
		return AssignDriverResult{}, err
	}

	if err = aggregate.AssignDriver(claimed.Driver.ID()); err != nil {
		return AssignDriverResult{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return AssignDriverResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignDriverResult{}, err
	}

	return AssignDriverResult{
		OrderID:        aggregate.ID(),
		DriverID:       claimed.Driver.ID(),
		DistanceMeters: claimed.DistanceMeters,
	}, nil
}

func (h AssignDriverCommandHandler) resolvePickup(ctx context.Context, aggregate *order.Order) (kernel.GeoPoint, error) {
	if location := aggregate.SourceLocation(); location != nil {
		return *location, nil
	}

	if aggregate.Source() == "" {
		return kernel.GeoPoint{}, ErrSourceAddressMissing
	}

	pickup, err := h.geocoder.Geocode(ctx, aggregate.Source())
	if err != nil {
		return kernel.GeoPoint{}, fmt.Errorf("%w: %w", ErrGeocodeFailed, err)
	}
	return pickup, nil
}

// claimFirst walks the distance ranking and claims the first driver still
// idle. The claim is the conditional update; losing it means a concurrent
// assignment took the driver and the next candidate is tried.
func (h AssignDriverCommandHandler) claimFirst(
	ctx context.Context,
	driverRepo ports.DriverRepository,
	ranked []services.DriverCandidate,
) (services.DriverCandidate, error) {
	for _, candidate := range ranked {
		won, err := driverRepo.ClaimIdle(ctx, candidate.Driver.ID())
		if err != nil {
			return services.DriverCandidate{}, err
		}
		if won {
			return candidate, nil
		}
	}
	return services.DriverCandidate{}, services.ErrNoAvailableDrivers
}
