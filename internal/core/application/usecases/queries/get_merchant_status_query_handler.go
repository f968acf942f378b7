package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"lastmile/internal/core/domain/model/party"
	"lastmile/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetMerchantStatusQueryHandler retrieves merchant availability from the database.
type GetMerchantStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetMerchantStatusQueryHandler creates a handler for merchant status queries.
func NewGetMerchantStatusQueryHandler(db *gorm.DB) GetMerchantStatusQueryHandler {
	return GetMerchantStatusQueryHandler{db: db}
}

// Handle executes the query for a single merchant.
// Returns errs.ErrObjectNotFound when the merchant does not exist.
func (h GetMerchantStatusQueryHandler) Handle(
	ctx context.Context,
	query GetMerchantStatusQuery,
) (GetMerchantStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMerchantStatusQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address,
			status,
			prep_minutes,
			inventory
		FROM merchants
		WHERE id = ?
	`, query.MerchantID()).Row()

	var response GetMerchantStatusQueryResponse
	var inventory []byte

	err := row.Scan(
		&response.ID,
		&response.Name,
		&response.Address,
		&response.Status,
		&response.PrepMinutes,
		&inventory,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetMerchantStatusQueryResponse{}, errs.ErrObjectNotFound
	}
	if err != nil {
		return GetMerchantStatusQueryResponse{}, err
	}

	if len(inventory) > 0 {
		if err = json.Unmarshal(inventory, &response.Inventory); err != nil {
			return GetMerchantStatusQueryResponse{}, err
		}
	}
	response.Open = response.Status == party.MerchantOpen.String()

	return response, nil
}
