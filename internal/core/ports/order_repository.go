package ports

import (
	"context"

	"lastmile/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate and returns its store-assigned id.
	Add(ctx context.Context, aggregate *order.Order) (int64, error)

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetUnassignedPreparing retrieves all orders in preparing status with no
	// assigned driver. Used as the candidate pool for nearby-order planning.
	GetUnassignedPreparing(ctx context.Context) ([]*order.Order, error)

	// GetOldestDispatchable retrieves the oldest unassigned order in
	// preparing or pending status that has a source address, or nil when no
	// such order exists. Used by the auto-dispatch job.
	GetOldestDispatchable(ctx context.Context) (*order.Order, error)

	// GetActiveByDriver retrieves the driver's current order: the most
	// recently assigned order that is not yet delivered, failed, or
	// cancelled. Returns nil when the driver has no active order.
	GetActiveByDriver(ctx context.Context, driverID int64) (*order.Order, error)
}
