package queries

import (
	"errors"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var ErrGetUserDetailsQueryIsNotConstructed = errors.New(
	"GetUserDetailsQuery must be created via NewGetUserDetailsQuery constructor",
)

// GetUserDetailsQuery retrieves a single customer record.
type GetUserDetailsQuery struct {
	userID int64

	guard guard.ConstructorGuard
}

// NewGetUserDetailsQuery creates a query for a user's details.
func NewGetUserDetailsQuery(userID int64) (GetUserDetailsQuery, error) {
	if userID <= 0 {
		return GetUserDetailsQuery{}, errs.NewValueIsInvalidError("userId")
	}

	return GetUserDetailsQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetUserDetailsQueryIsNotConstructed)
}

// UserID returns the queried user.
func (q GetUserDetailsQuery) UserID() int64 {
	return q.userID
}

// GetUserDetailsQueryResponse represents a customer in the read model.
type GetUserDetailsQueryResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}
