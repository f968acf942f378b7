package queries

import (
	"context"
	"database/sql"
	"errors"

	"lastmile/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetUserDetailsQueryHandler retrieves one customer from the database.
type GetUserDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetUserDetailsQueryHandler creates a handler for user detail queries.
func NewGetUserDetailsQueryHandler(db *gorm.DB) GetUserDetailsQueryHandler {
	return GetUserDetailsQueryHandler{db: db}
}

// Handle executes the query for a single user.
// Returns errs.ErrObjectNotFound when the user does not exist.
func (h GetUserDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetUserDetailsQuery,
) (GetUserDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUserDetailsQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			address,
			phone
		FROM users
		WHERE id = ?
	`, query.UserID()).Row()

	var response GetUserDetailsQueryResponse

	err := row.Scan(
		&response.ID,
		&response.Name,
		&response.Email,
		&response.Address,
		&response.Phone,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetUserDetailsQueryResponse{}, errs.ErrObjectNotFound
	}
	if err != nil {
		return GetUserDetailsQueryResponse{}, err
	}

	return response, nil
}
