package ports

import (
	"context"

	"lastmile/internal/core/domain/model/party"
)

// UserRepository defines the persistence contract for user records.
type UserRepository interface {
	// Add persists a new user and returns its store-assigned id.
	Add(ctx context.Context, record *party.User) (int64, error)

	// Get retrieves a user by its identifier.
	Get(ctx context.Context, id int64) (*party.User, error)
}

// MerchantRepository defines the read contract for merchant records.
// Merchants are provisioned outside this system.
type MerchantRepository interface {
	// Get retrieves a merchant by its identifier.
	Get(ctx context.Context, id int64) (*party.Merchant, error)

	// GetAllOpen retrieves all merchants currently accepting orders.
	GetAllOpen(ctx context.Context) ([]*party.Merchant, error)
}

// FeedbackRepository defines the persistence contract for packaging feedback.
type FeedbackRepository interface {
	// Add persists a new packaging feedback record and returns its store-assigned id.
	Add(ctx context.Context, record *party.PackagingFeedback) (int64, error)
}
