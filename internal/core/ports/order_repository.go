// Package ports defines the contracts between the application core and its
// adapters: repositories, the unit of work, the identity gateway and the
// token, password and access-policy services.
package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order. The order must be valid.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order with an optimistic
	// compare-and-set on the version the aggregate was loaded at.
	//
	// Returns:
	//   - errs.ObjectNotFoundError if the order does not exist
	//   - errs.VersionIsInvalidError if another writer saved first
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstAssignable returns the oldest order without a rider that is not
	// completed, or errs.ObjectNotFoundError if there is none.
	GetFirstAssignable(ctx context.Context) (*order.Order, error)

	// GetBusyRiders returns the riders currently holding a non-completed order.
	GetBusyRiders(ctx context.Context) ([]kernel.UUID, error)
}
