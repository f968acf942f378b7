// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models and bypass the domain aggregates.
package queries

import (
	"errors"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var ErrGetDriverStatusQueryIsNotConstructed = errors.New(
	"GetDriverStatusQuery must be created via NewGetDriverStatusQuery constructor",
)

// GetDriverStatusQuery retrieves a single driver's operational state and last
// known location.
//
// Example:
//
//	query, err := queries.NewGetDriverStatusQuery(driverID)
//	if err != nil {
//	    return err
//	}
//
//	status, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve driver: %w", err)
//	}
//
//	fmt.Printf("Driver %s is %s\n", status.Name, status.State)
type GetDriverStatusQuery struct {
	driverID int64

	guard guard.ConstructorGuard
}

// NewGetDriverStatusQuery creates a query for a driver's current status.
func NewGetDriverStatusQuery(driverID int64) (GetDriverStatusQuery, error) {
	if driverID <= 0 {
		return GetDriverStatusQuery{}, errs.NewValueIsInvalidError("driverId")
	}

	return GetDriverStatusQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDriverStatusQueryIsNotConstructed if validation fails.
func (q GetDriverStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverStatusQueryIsNotConstructed)
}

// DriverID returns the queried driver.
func (q GetDriverStatusQuery) DriverID() int64 {
	return q.driverID
}

// GetDriverStatusQueryResponse represents a driver in the read model.
// Location is nil for drivers that never reported a position.
type GetDriverStatusQueryResponse struct {
	ID       int64            `json:"id"`
	Name     string           `json:"name"`
	Phone    string           `json:"phone,omitempty"`
	State    string           `json:"state"`
	Location *kernel.GeoPoint `json:"location,omitempty"`
}
