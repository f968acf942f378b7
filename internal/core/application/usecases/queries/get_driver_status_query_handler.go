package queries

import (
	"context"
	"database/sql"
	"errors"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDriverStatusQueryHandler retrieves driver state from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type GetDriverStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverStatusQueryHandler creates a handler for driver status queries.
// Requires a GORM database connection for query execution.
func NewGetDriverStatusQueryHandler(db *gorm.DB) GetDriverStatusQueryHandler {
	return GetDriverStatusQueryHandler{db: db}
}

// Handle executes the query for a single driver.
// Returns errs.ErrObjectNotFound when the driver does not exist.
func (h GetDriverStatusQueryHandler) Handle(
	ctx context.Context,
	query GetDriverStatusQuery,
) (GetDriverStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDriverStatusQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone,
			state,
			lat,
			lng
		FROM drivers
		WHERE id = ?
	`, query.DriverID()).Row()

	var response GetDriverStatusQueryResponse
	var lat, lng sql.NullFloat64

	err := row.Scan(
		&response.ID,
		&response.Name,
		&response.Phone,
		&response.State,
		&lat,
		&lng,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDriverStatusQueryResponse{}, errs.ErrObjectNotFound
	}
	if err != nil {
		return GetDriverStatusQueryResponse{}, err
	}

	if lat.Valid && lng.Valid {
		location, locErr := kernel.NewGeoPoint(lat.Float64, lng.Float64)
		if locErr != nil {
			return GetDriverStatusQueryResponse{}, locErr
		}
		response.Location = &location
	}

	return response, nil
}
