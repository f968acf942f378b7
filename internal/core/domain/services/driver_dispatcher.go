package services

import (
	"errors"
	"sort"

	"lastmile/internal/core/domain/model/driver"
	"lastmile/internal/core/domain/model/kernel"
)

// ErrNoAvailableDrivers is returned when no dispatchable driver exists for an
// order. This occurs when either no drivers are provided or none of the
// provided drivers is idle with a known location.
var ErrNoAvailableDrivers = errors.New("no available drivers")

// DriverCandidate is a dispatchable driver paired with its straight-line
// distance to the pickup point.
type DriverCandidate struct {
	Driver         *driver.Driver
	DistanceMeters float64
}

// DriverDispatcher is a domain service responsible for selecting the driver
// closest to an order's pickup point.
//
// Business rules:
//   - Only dispatchable drivers (idle, with a known location) are considered
//   - Distance is great-circle distance to the pickup point
//   - Ties go to the earlier driver in the input slice
type DriverDispatcher struct{}

// NewDriverDispatcher creates a new DriverDispatcher instance.
func NewDriverDispatcher() DriverDispatcher {
	return DriverDispatcher{}
}

// SelectNearest returns the dispatchable driver closest to the pickup point.
// Returns ErrNoAvailableDrivers when no driver qualifies.
func (d DriverDispatcher) SelectNearest(pickup kernel.GeoPoint, drivers []*driver.Driver) (DriverCandidate, error) {
	ranked, err := d.RankByDistance(pickup, drivers)
	if err != nil {
		return DriverCandidate{}, err
	}
	if len(ranked) == 0 {
		return DriverCandidate{}, ErrNoAvailableDrivers
	}
	return ranked[0], nil
}

// RankByDistance filters the given drivers down to dispatchable ones and
// returns them ordered by ascending distance to the pickup point. The order
// among equidistant drivers follows the input slice, so the first-listed
// driver wins ties. Callers that claim drivers conditionally walk this
// ranking until a claim succeeds.
func (d DriverDispatcher) RankByDistance(pickup kernel.GeoPoint, drivers []*driver.Driver) ([]DriverCandidate, error) {
	if err := pickup.Validate(); err != nil {
		return nil, err
	}

	candidates := make([]DriverCandidate, 0, len(drivers))
	for _, drv := range drivers {
		if err := drv.Validate(); err != nil {
			return nil, err
		}

		if !drv.IsDispatchable() {
			continue
		}

		distance, err := drv.Location().DistanceTo(pickup)
		if err != nil {
			return nil, err
		}

		candidates = append(candidates, DriverCandidate{Driver: drv, DistanceMeters: distance})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].DistanceMeters < candidates[j].DistanceMeters
	})
	return candidates, nil
}
