// Package services contains domain services implementing dispatch logic that
// spans multiple aggregates.
//
// Services:
//   - DriverDispatcher: ranks dispatchable drivers by distance to a pickup
//     point and selects the nearest
//   - NearbyOrderPlanner: decides whether an enroute driver should pick up an
//     additional nearby order without delaying the delivery underway
package services
