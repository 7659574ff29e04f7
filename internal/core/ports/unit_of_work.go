package ports

import (
	"context"
)

type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one transaction plus the repositories bound to it. A service
// only ever asks for the repository of the table it owns; the command layer
// narrows this interface per service.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	// Rollback is safe to defer; after Commit it returns an error that callers ignore.
	Rollback(ctx context.Context) error

	UserRepository() UserRepository
	ProductRepository() ProductRepository
	OrderRepository() OrderRepository
}
