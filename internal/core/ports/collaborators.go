package ports

import (
	"context"
	"errors"

	"lastmile/internal/core/domain/model/kernel"
)

// ErrAddressNotFound is returned by Geocoder when the address cannot be
// resolved to coordinates.
var ErrAddressNotFound = errors.New("address not found")

// Geocoder resolves a free-form address to coordinates.
type Geocoder interface {
	// Geocode resolves the address. Returns ErrAddressNotFound when the
	// resolver produces no result for it.
	Geocode(ctx context.Context, address string) (kernel.GeoPoint, error)
}

// Travel is a road-network travel estimate between two points.
type Travel struct {
	// DistanceMeters is the travel distance along the road network.
	DistanceMeters float64

	// DurationSeconds is the estimated travel time.
	DurationSeconds int
}

// TravelEstimator estimates road travel between two points.
type TravelEstimator interface {
	// Estimate returns the travel estimate from origin to destination.
	// Returns an error when no route exists or the estimator fails; callers
	// treating routes as optional skip the pair.
	Estimate(ctx context.Context, origin, destination kernel.GeoPoint) (Travel, error)
}

// EmailSender delivers a single email message.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMSSender delivers a single SMS message.
type SMSSender interface {
	Send(ctx context.Context, to, body string) error
}

// TextCompleter produces a single free-form completion for a prompt.
// Output is untrusted; callers decode it best-effort.
type TextCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
