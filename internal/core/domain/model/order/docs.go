// Package order provides the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root (identity, parties, line items, destination, status, rider)
//   - LineItem: an immutable product snapshot taken at order creation
//   - Status: the forward-only lifecycle with a fixed predecessor per target
//
// Key business rules:
//   - New orders start in AwaitingPreparation with no rider
//   - A status advance is accepted iff the current status is the target's predecessor
//   - Rider acceptance is a compare-and-set on "no rider yet" and does not change status
//   - Rejected operations never mutate the order
package order
