package commands

import (
	"context"
	"errors"

	"lastmile/internal/core/domain/services"
	"lastmile/internal/core/ports"
	"lastmile/internal/pkg/errs"
)

var ErrDriverNotFound = errors.New("driver not found")

// AssignNearbyOrderResult reports the outcome of a nearby-order search.
// An empty candidate set is a normal outcome, reported with Assigned false.
type AssignNearbyOrderResult struct {
	Assigned       bool    `json:"assigned"`
	OrderID        int64   `json:"orderId,omitempty"`
	DistanceMeters float64 `json:"distanceMeters,omitempty"`
}

// AssignNearbyOrderCommandHandler finds an additional order for an enroute
// driver: unassigned orders under preparation whose pickup lies within the
// search radius and whose preparation time undercuts the driver's current
// order by the configured margin. Travel is estimated over the road network;
// pairs the estimator cannot route are skipped, not failed.
type AssignNearbyOrderCommandHandler struct {
	uowFactory NearbyUoWFactory
	estimator  ports.TravelEstimator
	planner    services.NearbyOrderPlanner
}

// NewAssignNearbyOrderCommandHandler creates a handler for nearby-order
// reassignment with the given preparation-time margin in minutes.
func NewAssignNearbyOrderCommandHandler(
	uowFactory NearbyUoWFactory,
	estimator ports.TravelEstimator,
	prepMarginMinutes int,
) AssignNearbyOrderCommandHandler {
	return AssignNearbyOrderCommandHandler{
		uowFactory: uowFactory,
		estimator:  estimator,
		planner:    services.NewNearbyOrderPlanner(prepMarginMinutes),
	}
}

// Handle processes the nearby-order command.
func (h AssignNearbyOrderCommandHandler) Handle(ctx context.Context, command AssignNearbyOrderCommand) (AssignNearbyOrderResult, error) {
	if err := command.Validate(); err != nil {
		return AssignNearbyOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignNearbyOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()
	orderRepo := uow.OrderRepository()
	merchantRepo := uow.MerchantRepository()

	driver, err := driverRepo.Get(ctx, command.DriverID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return AssignNearbyOrderResult{}, ErrDriverNotFound
	}
	if err != nil {
		return AssignNearbyOrderResult{}, err
	}

	if driver.Location() == nil {
		// nothing can be near a driver we cannot place
		return AssignNearbyOrderResult{Assigned: false}, nil
	}

	orders, err := orderRepo.GetUnassignedPreparing(ctx)
	if err != nil {
		return AssignNearbyOrderResult{}, err
	}

	prepByMerchant := make(map[int64]int)
	candidates := make([]services.OrderCandidate, 0, len(orders))
	for _, candidate := range orders {
		pickup := candidate.SourceLocation()
		if pickup == nil {
			continue
		}

		prepMinutes, ok := prepByMerchant[candidate.MerchantID()]
		if !ok {
			merchant, err := merchantRepo.Get(ctx, candidate.MerchantID())
			if errors.Is(err, errs.ErrObjectNotFound) {
				continue
			}
			if err != nil {
				return AssignNearbyOrderResult{}, err
			}
			prepMinutes = merchant.PrepMinutes()
			prepByMerchant[candidate.MerchantID()] = prepMinutes
		}

		travel, err := h.estimator.Estimate(ctx, *driver.Location(), *pickup)
		if err != nil {
			// unroutable pair, skip the candidate
			continue
		}

		candidates = append(candidates, services.OrderCandidate{
			Order:          candidate,
			PrepMinutes:    prepMinutes,
			DistanceMeters: travel.DistanceMeters,
		})
	}

	best, found, err := h.planner.Plan(command.CurrentPrepMinutes(), command.MaxDistanceKm()*1000, candidates)
	if err != nil {
		return AssignNearbyOrderResult{}, err
	}
	if !found {
		return AssignNearbyOrderResult{Assigned: false}, nil
	}

	if err = best.Order.AssignDriver(driver.ID()); err != nil {
		return AssignNearbyOrderResult{}, err
	}

	if err = orderRepo.Update(ctx, best.Order); err != nil {
		return AssignNearbyOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignNearbyOrderResult{}, err
	}

	return AssignNearbyOrderResult{
		Assigned:       true,
		OrderID:        best.Order.ID(),
		DistanceMeters: best.DistanceMeters,
	}, nil
}
