package queries

import (
	"context"
	"database/sql"
	"errors"

	"lastmile/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// CheckDriverOrderQueryHandler looks up a driver's active order together with
// the merchant's remaining preparation time. The preparation time feeds the
// nearby-order reassignment decision.
type CheckDriverOrderQueryHandler struct {
	db *gorm.DB
}

// NewCheckDriverOrderQueryHandler creates a handler for active order checks.
func NewCheckDriverOrderQueryHandler(db *gorm.DB) CheckDriverOrderQueryHandler {
	return CheckDriverOrderQueryHandler{db: db}
}

// Handle executes the active order check.
// Returns HasOrder false when the driver has no preparing or pending order.
func (h CheckDriverOrderQueryHandler) Handle(
	ctx context.Context,
	query CheckDriverOrderQuery,
) (CheckDriverOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CheckDriverOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.merchant_id,
			COALESCE(m.prep_minutes, 0)
		FROM orders o
		LEFT JOIN merchants m ON m.id = o.merchant_id
		WHERE o.driver_id = ? AND o.status IN (?, ?)
		ORDER BY o.id
		LIMIT 1
	`, query.DriverID(), order.Preparing.String(), order.Pending.String()).Row()

	var response CheckDriverOrderQueryResponse

	err := row.Scan(
		&response.OrderID,
		&response.Status,
		&response.MerchantID,
		&response.PrepMinutes,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return CheckDriverOrderQueryResponse{HasOrder: false}, nil
	}
	if err != nil {
		return CheckDriverOrderQueryResponse{}, err
	}

	response.HasOrder = true
	return response, nil
}
