package queries

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/party"
	"lastmile/internal/core/ports"

	"gorm.io/gorm"
)

// FindNearbyMerchantsQueryHandler geocodes the search address and ranks open
// merchants by straight-line distance. Merchants without a stored location are
// excluded; when the query names items, so are merchants not carrying all of
// them.
type FindNearbyMerchantsQueryHandler struct {
	db       *gorm.DB
	geocoder ports.Geocoder
}

// NewFindNearbyMerchantsQueryHandler creates a handler for merchant discovery.
func NewFindNearbyMerchantsQueryHandler(db *gorm.DB, geocoder ports.Geocoder) FindNearbyMerchantsQueryHandler {
	return FindNearbyMerchantsQueryHandler{db: db, geocoder: geocoder}
}

// Handle executes the discovery query.
func (h FindNearbyMerchantsQueryHandler) Handle(
	ctx context.Context,
	query FindNearbyMerchantsQuery,
) ([]FindNearbyMerchantsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	center, err := h.geocoder.Geocode(ctx, query.Address())
	if err != nil {
		return nil, fmt.Errorf("geocode search address: %w", err)
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address,
			prep_minutes,
			inventory,
			lat,
			lng
		FROM merchants
		WHERE status = ? AND lat IS NOT NULL AND lng IS NOT NULL
	`, party.MerchantOpen.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	maxMeters := query.RadiusKm() * 1000
	merchants := make([]FindNearbyMerchantsQueryResponse, 0)

	for rows.Next() {
		var response FindNearbyMerchantsQueryResponse
		var inventoryRaw []byte
		var lat, lng float64

		err = rows.Scan(
			&response.ID,
			&response.Name,
			&response.Address,
			&response.PrepMinutes,
			&inventoryRaw,
			&lat,
			&lng,
		)
		if err != nil {
			return nil, err
		}

		location, locErr := kernel.NewGeoPoint(lat, lng)
		if locErr != nil {
			return nil, locErr
		}

		distance, distErr := center.DistanceTo(location)
		if distErr != nil {
			return nil, distErr
		}
		if distance > maxMeters {
			continue
		}

		if len(query.Items()) > 0 {
			var inventory []string
			if len(inventoryRaw) > 0 {
				if err = json.Unmarshal(inventoryRaw, &inventory); err != nil {
					return nil, err
				}
			}
			if !carriesAll(inventory, query.Items()) {
				continue
			}
		}

		response.DistanceMeters = distance
		merchants = append(merchants, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(merchants, func(i, j int) bool {
		return merchants[i].DistanceMeters < merchants[j].DistanceMeters
	})

	return merchants, nil
}

// carriesAll mirrors the case-insensitive inventory check of the merchant
// aggregate for raw read-model rows.
func carriesAll(inventory, items []string) bool {
	carried := make(map[string]struct{}, len(inventory))
	for _, item := range inventory {
		carried[strings.ToLower(item)] = struct{}{}
	}
	for _, item := range items {
		if _, ok := carried[strings.ToLower(item)]; !ok {
			return false
		}
	}
	return true
}
