// Package commands holds the write side of the three services. A handler
// validates its command, authenticates the caller's token when the command
// carries one, and then changes state inside one unit of work.
package commands

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// Each service gets a unit of work narrowed to the repository it owns.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// UserUoW is used by identity-service commands.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}

	// ProductUoW is used by catalog-service commands.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// OrderUoW is what order-service commands see. Transitions run as
	// load, apply, Update; Update fails with a version error when another
	// writer got there first, and retryOnVersionConflict starts over.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
