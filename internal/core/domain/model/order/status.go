package order

import (
	"fmt"

	"lastmile/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Status is deliberately an unconstrained enum: callers drive transitions and
// no predecessor-state table is enforced. Merchant reassignment, for example,
// legitimately produces preparing -> cancelled on the old order while a fresh
// preparing order is created, so only membership in the defined set is checked.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Preparing means the merchant is preparing the order.
	Preparing

	// Pending means the order is ready and waiting for pickup.
	Pending

	// Delivered means the order was completed successfully.
	Delivered

	// Failed means the delivery could not be completed.
	Failed

	// Cancelled means the order was cancelled.
	Cancelled
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Preparing:     "preparing",
		Pending:       "pending",
		Delivered:     "delivered",
		Failed:        "failed",
		Cancelled:     "cancelled",
	}
}

// String returns the lowercase wire representation of the status.
func (s Status) String() string {
	if name, ok := statusStrings()[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// IsValid reports whether the status is one of the defined lifecycle states.
func (s Status) IsValid() bool {
	switch s {
	case Preparing, Pending, Delivered, Failed, Cancelled:
		return true
	default:
		return false
	}
}

// ParseStatus converts a wire string into a Status.
// Returns a validation error for anything outside the defined set.
func ParseStatus(value string) (Status, error) {
	for status, name := range statusStrings() {
		if status != StatusUnknown && name == value {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("status")
}
