package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	// Add persists a new product. A name already used by the same merchant
	// yields ErrAlreadyExists.
	Add(ctx context.Context, aggregate *product.Product) error

	// RemoveByName deletes a merchant's product by name, or returns
	// errs.ObjectNotFoundError if the merchant has no such product.
	RemoveByName(ctx context.Context, merchantID kernel.UUID, name string) error
}
