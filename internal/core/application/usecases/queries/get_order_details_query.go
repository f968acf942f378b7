package queries

import (
	"errors"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
	"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
)

// GetOrderDetailsQuery retrieves the full read model of one order.
type GetOrderDetailsQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderDetailsQuery creates a query for an order's details.
func NewGetOrderDetailsQuery(orderID int64) (GetOrderDetailsQuery, error) {
	if orderID <= 0 {
		return GetOrderDetailsQuery{}, errs.NewValueIsInvalidError("orderId")
	}

	return GetOrderDetailsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

// OrderID returns the queried order.
func (q GetOrderDetailsQuery) OrderID() int64 {
	return q.orderID
}

// GetOrderDetailsQueryResponse represents an order in the read model.
// DriverID is nil while the order is unassigned.
type GetOrderDetailsQueryResponse struct {
	ID          int64    `json:"id"`
	Status      string   `json:"status"`
	Source      string   `json:"source"`
	Destination string   `json:"destination"`
	Items       []string `json:"items"`
	UserID      int64    `json:"userId"`
	MerchantID  int64    `json:"merchantId"`
	DriverID    *int64   `json:"driverId,omitempty"`
}
