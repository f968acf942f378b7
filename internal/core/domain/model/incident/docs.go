// Package incident provides the mediation-side records of the delivery system.
//
// The package includes:
//   - Incident: an operational incident record, optionally tied to an order and
//     a mediation scenario, with an append-only exoneration marker
//   - Evidence: a single collected evidence item, serialized into an Incident's
//     metadata blob rather than stored standalone
//   - HumanEscalation: an immutable ticket handing a case to a human operator
package incident
