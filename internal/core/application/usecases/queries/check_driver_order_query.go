package queries

import (
	"errors"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var ErrCheckDriverOrderQueryIsNotConstructed = errors.New(
	"CheckDriverOrderQuery must be created via NewCheckDriverOrderQuery constructor",
)

// CheckDriverOrderQuery asks whether a driver currently has an order in
// preparation and, if so, how long the merchant still needs.
type CheckDriverOrderQuery struct {
	driverID int64

	guard guard.ConstructorGuard
}

// NewCheckDriverOrderQuery creates a query for a driver's current order.
func NewCheckDriverOrderQuery(driverID int64) (CheckDriverOrderQuery, error) {
	if driverID <= 0 {
		return CheckDriverOrderQuery{}, errs.NewValueIsInvalidError("driverId")
	}

	return CheckDriverOrderQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CheckDriverOrderQuery) Validate() error {
	return q.guard.Validate(ErrCheckDriverOrderQueryIsNotConstructed)
}

// DriverID returns the queried driver.
func (q CheckDriverOrderQuery) DriverID() int64 {
	return q.driverID
}

// CheckDriverOrderQueryResponse reports the driver's active order.
// A driver without one is a normal outcome with HasOrder false, not an error.
type CheckDriverOrderQueryResponse struct {
	HasOrder    bool   `json:"hasOrder"`
	OrderID     int64  `json:"orderId,omitempty"`
	Status      string `json:"status,omitempty"`
	MerchantID  int64  `json:"merchantId,omitempty"`
	PrepMinutes int    `json:"prepMinutes,omitempty"`
}
