package queries

import (
	"errors"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

// DefaultSearchRadiusKm bounds merchant discovery when the caller gives no radius.
const DefaultSearchRadiusKm = 10.0

var (
	ErrFindNearbyMerchantsQueryIsNotConstructed = errors.New(
		"FindNearbyMerchantsQuery must be created via NewFindNearbyMerchantsQuery constructor",
	)
	ErrSearchAddressIsRequired = errs.NewValueIsRequiredError("address")
)

// FindNearbyMerchantsQuery discovers open merchants within a radius of an
// address, optionally restricted to those carrying a set of items.
//
// Example:
//
//	query, err := queries.NewFindNearbyMerchantsQuery("12 Market St", 5, []string{"Dosa"})
//	if err != nil {
//	    return err
//	}
//
//	merchants, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to find merchants: %w", err)
//	}
//
//	for _, m := range merchants {
//	    fmt.Printf("%s (%.0f m away)\n", m.Name, m.DistanceMeters)
//	}
type FindNearbyMerchantsQuery struct {
	address  string
	radiusKm float64
	items    []string

	guard guard.ConstructorGuard
}

// NewFindNearbyMerchantsQuery creates a merchant discovery query.
// A non-positive radius falls back to DefaultSearchRadiusKm; items may be empty.
func NewFindNearbyMerchantsQuery(address string, radiusKm float64, items []string) (FindNearbyMerchantsQuery, error) {
	if address == "" {
		return FindNearbyMerchantsQuery{}, ErrSearchAddressIsRequired
	}
	if radiusKm <= 0 {
		radiusKm = DefaultSearchRadiusKm
	}

	return FindNearbyMerchantsQuery{
		address:  address,
		radiusKm: radiusKm,
		items:    items,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q FindNearbyMerchantsQuery) Validate() error {
	return q.guard.Validate(ErrFindNearbyMerchantsQueryIsNotConstructed)
}

// Address returns the search center address.
func (q FindNearbyMerchantsQuery) Address() string {
	return q.address
}

// RadiusKm returns the search radius in kilometers.
func (q FindNearbyMerchantsQuery) RadiusKm() float64 {
	return q.radiusKm
}

// Items returns the requested items, or an empty slice.
func (q FindNearbyMerchantsQuery) Items() []string {
	return q.items
}

// FindNearbyMerchantsQueryResponse represents a discovered merchant, sorted by
// ascending straight-line distance from the search center.
type FindNearbyMerchantsQueryResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	PrepMinutes    int     `json:"prepMinutes"`
	DistanceMeters float64 `json:"distanceMeters"`
}
