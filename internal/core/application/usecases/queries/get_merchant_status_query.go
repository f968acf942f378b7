package queries

import (
	"errors"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var ErrGetMerchantStatusQueryIsNotConstructed = errors.New(
	"GetMerchantStatusQuery must be created via NewGetMerchantStatusQuery constructor",
)

// GetMerchantStatusQuery retrieves a merchant's availability and inventory.
type GetMerchantStatusQuery struct {
	merchantID int64

	guard guard.ConstructorGuard
}

// NewGetMerchantStatusQuery creates a query for a merchant's status.
func NewGetMerchantStatusQuery(merchantID int64) (GetMerchantStatusQuery, error) {
	if merchantID <= 0 {
		return GetMerchantStatusQuery{}, errs.NewValueIsInvalidError("merchantId")
	}

	return GetMerchantStatusQuery{
		merchantID: merchantID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMerchantStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetMerchantStatusQueryIsNotConstructed)
}

// MerchantID returns the queried merchant.
func (q GetMerchantStatusQuery) MerchantID() int64 {
	return q.merchantID
}

// GetMerchantStatusQueryResponse represents a merchant in the read model.
type GetMerchantStatusQueryResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Status      string   `json:"status"`
	Open        bool     `json:"open"`
	PrepMinutes int      `json:"prepMinutes"`
	Inventory   []string `json:"inventory"`
}
