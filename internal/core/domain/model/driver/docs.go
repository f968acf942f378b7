// Package driver provides the Driver aggregate for the delivery system.
//
// The package includes:
//   - Driver: The aggregate root managing driver identity, position, and state
//   - State: The driver's operational state (idle, enroute, delivering, offline)
//
// Key business rules:
//   - Drivers are created externally during onboarding and never deleted here
//   - A driver is dispatchable only when idle with a known location
//   - State membership is validated but transitions are not restricted
package driver
