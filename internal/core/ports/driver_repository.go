// Package ports defines the repository, unit-of-work, and collaborator
// interfaces between the application core and infrastructure adapters,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"lastmile/internal/core/domain/model/driver"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver aggregate and returns its store-assigned id.
	Add(ctx context.Context, aggregate *driver.Driver) (int64, error)

	// Update persists changes to an existing driver aggregate.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its identifier.
	Get(ctx context.Context, id int64) (*driver.Driver, error)

	// GetAllDispatchable retrieves all idle drivers with a known location.
	GetAllDispatchable(ctx context.Context) ([]*driver.Driver, error)

	// ClaimIdle atomically moves the driver from idle to enroute, reporting
	// whether the claim won. A false result means another dispatch claimed
	// the driver between selection and claim; callers move on to the next
	// candidate.
	ClaimIdle(ctx context.Context, id int64) (bool, error)
}
