package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"lastmile/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderDetailsQueryHandler retrieves one order from the database.
type GetOrderDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderDetailsQueryHandler creates a handler for order detail queries.
func NewGetOrderDetailsQueryHandler(db *gorm.DB) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db}
}

// Handle executes the query for a single order.
// Returns errs.ErrObjectNotFound when the order does not exist.
func (h GetOrderDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailsQuery,
) (GetOrderDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			source,
			destination,
			items,
			user_id,
			merchant_id,
			driver_id
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Row()

	var response GetOrderDetailsQueryResponse
	var items []byte
	var driverID sql.NullInt64

	err := row.Scan(
		&response.ID,
		&response.Status,
		&response.Source,
		&response.Destination,
		&items,
		&response.UserID,
		&response.MerchantID,
		&driverID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderDetailsQueryResponse{}, errs.ErrObjectNotFound
	}
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	if len(items) > 0 {
		if err = json.Unmarshal(items, &response.Items); err != nil {
			return GetOrderDetailsQueryResponse{}, err
		}
	}
	if driverID.Valid {
		id := driverID.Int64
		response.DriverID = &id
	}

	return response, nil
}
