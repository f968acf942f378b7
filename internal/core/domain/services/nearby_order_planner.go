package services

import (
	"lastmile/internal/core/domain/model/order"
)

// OrderCandidate is an unassigned order under preparation, paired with its
// merchant's preparation time and the driver's travel distance to its pickup.
type OrderCandidate struct {
	Order          *order.Order
	PrepMinutes    int
	DistanceMeters float64
}

// NearbyOrderPlanner is a domain service that decides whether an enroute
// driver should pick up an additional nearby order.
//
// Business rules:
//   - Only orders in preparing status with no assigned driver qualify
//   - The pickup must lie within the caller's distance limit
//   - The candidate's preparation time must undercut the driver's current
//     order by at least the configured margin, so the detour never delays
//     the delivery already underway
//   - Among qualifying orders the one with the shortest preparation time
//     wins; ties go to the earlier candidate in the input slice
type NearbyOrderPlanner struct {
	// prepMarginMinutes is the minimum preparation-time headroom a candidate
	// must have under the driver's current order
	prepMarginMinutes int
}

// NewNearbyOrderPlanner creates a NearbyOrderPlanner with the given
// preparation-time margin in minutes.
func NewNearbyOrderPlanner(prepMarginMinutes int) NearbyOrderPlanner {
	return NearbyOrderPlanner{prepMarginMinutes: prepMarginMinutes}
}

// Plan selects the best additional order for a driver whose current order has
// the given preparation time, considering only candidates within
// maxDistanceMeters. Reports false when no candidate qualifies; an empty plan
// is a normal business outcome, not an error.
func (p NearbyOrderPlanner) Plan(
	currentPrepMinutes int,
	maxDistanceMeters float64,
	candidates []OrderCandidate,
) (OrderCandidate, bool, error) {
	var (
		best  OrderCandidate
		found bool
	)

	for _, c := range candidates {
		if err := c.Order.Validate(); err != nil {
			return OrderCandidate{}, false, err
		}

		if c.Order.Status() != order.Preparing || c.Order.DriverID() != nil {
			continue
		}
		if c.DistanceMeters > maxDistanceMeters {
			continue
		}
		if c.PrepMinutes > currentPrepMinutes-p.prepMarginMinutes {
			continue
		}

		if !found || c.PrepMinutes < best.PrepMinutes {
			best = c
			found = true
		}
	}

	return best, found, nil
}
