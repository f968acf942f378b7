// Package order provides the Order aggregate for the delivery system.
//
// The package includes:
//   - Order: The aggregate root managing addresses, items, ownership, status,
//     and the at-most-one assigned driver
//   - Status: The caller-driven lifecycle state (preparing, pending, delivered,
//     failed, cancelled)
//
// Key business rules:
//   - An order has at most one assigned driver; the reference is nil until assignment
//   - Status values are membership-validated only; no transition table is enforced
package order
