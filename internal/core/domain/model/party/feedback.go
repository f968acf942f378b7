package party

import (
	"errors"
	"time"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

// Domain errors for packaging feedback operations.
var (
	// ErrFeedbackIsNotConstructed is returned when a PackagingFeedback was not created through a constructor.
	ErrFeedbackIsNotConstructed = errors.New("PackagingFeedback must be created via NewPackagingFeedback constructor")
	// ErrFeedbackIsRequired is returned when attempting to record empty feedback.
	ErrFeedbackIsRequired = errs.NewValueIsRequiredError("feedback")
)

// PackagingFeedback is a note about a merchant's packaging quality, recorded
// during mediation so recurring packaging problems become visible per merchant.
type PackagingFeedback struct {
	// id is the store-assigned identifier
	id int64

	// merchantID references the merchant the feedback concerns
	merchantID int64

	// orderID references the order the feedback came from, nil when general
	orderID *int64

	// feedback is the free-form packaging note
	feedback string

	// createdAt is when the feedback was recorded
	createdAt time.Time

	// guard ensures the record was created via a constructor
	guard guard.ConstructorGuard
}

// NewPackagingFeedback creates a new PackagingFeedback record.
// orderID may be nil.
func NewPackagingFeedback(
	id int64,
	merchantID int64,
	orderID *int64,
	feedback string,
	createdAt time.Time,
) (*PackagingFeedback, error) {
	f := &PackagingFeedback{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		f.setID(id),
		f.setFeedback(feedback),
	); err != nil {
		return nil, err
	}

	if orderID != nil {
		o := *orderID
		f.orderID = &o
	}

	f.merchantID = merchantID
	f.createdAt = createdAt
	return f, nil
}

// RestorePackagingFeedback reconstructs a PackagingFeedback record from persistent storage.
func RestorePackagingFeedback(
	id int64,
	merchantID int64,
	orderID *int64,
	feedback string,
	createdAt time.Time,
) (*PackagingFeedback, error) {
	return NewPackagingFeedback(id, merchantID, orderID, feedback, createdAt)
}

// Validate checks that the record was created through a constructor.
func (f *PackagingFeedback) Validate() error {
	if f == nil {
		return ErrFeedbackIsNotConstructed
	}
	return f.guard.Validate(ErrFeedbackIsNotConstructed)
}

// ID returns the record's store-assigned identifier.
func (f *PackagingFeedback) ID() int64 {
	return f.id
}

// MerchantID returns the merchant the feedback concerns.
func (f *PackagingFeedback) MerchantID() int64 {
	return f.merchantID
}

// OrderID returns the originating order's identifier, or nil.
func (f *PackagingFeedback) OrderID() *int64 {
	return f.orderID
}

// Feedback returns the free-form packaging note.
func (f *PackagingFeedback) Feedback() string {
	return f.feedback
}

// CreatedAt returns when the feedback was recorded.
func (f *PackagingFeedback) CreatedAt() time.Time {
	return f.createdAt
}

func (f *PackagingFeedback) setID(id int64) error {
	if id < 0 {
		return errs.NewValueIsInvalidError("id")
	}
	f.id = id
	return nil
}

func (f *PackagingFeedback) setFeedback(feedback string) error {
	if feedback == "" {
		return ErrFeedbackIsRequired
	}
	f.feedback = feedback
	return nil
}
