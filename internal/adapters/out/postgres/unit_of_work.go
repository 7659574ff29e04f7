// Package postgres stores users, products and orders in PostgreSQL through
// gorm. A unit of work wraps one transaction and hands out repositories bound
// to it; those repositories report every aggregate they write back to it.
//
// A command handler drives it like this:
//
//	uow := postgres.NewGormUnitOfWorkFactory(db).Create()
//	if err := uow.Begin(ctx); err != nil {
//		return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//	// load, apply a domain transition, save through uow.OrderRepository()
//	return uow.Commit(ctx)
//
// A unit of work is not safe for concurrent use. Parallel requests each
// create their own from the shared factory.
package postgres

import (
	"context"

	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/productrepo"
	"fooddelivery/internal/adapters/out/postgres/userrepo"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory shares one connection pool between units of work.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a unit of work with no transaction open yet.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{pool: f.db}
}

// GormUnitOfWork holds at most one open transaction. Outside a transaction
// its repositories run on the pool directly.
type GormUnitOfWork struct {
	pool    *gorm.DB
	tx      *gorm.DB
	written []kernel.UUID
}

// Begin is a no-op while a transaction is already open.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.pool.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	uow.tx = tx
	return nil
}

func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	return uow.close(func(tx *gorm.DB) *gorm.DB { return tx.Commit() })
}

// Rollback after a successful Commit returns gorm.ErrInvalidTransaction,
// which deferred rollbacks discard.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	return uow.close(func(tx *gorm.DB) *gorm.DB { return tx.Rollback() })
}

func (uow *GormUnitOfWork) close(finish func(*gorm.DB) *gorm.DB) error {
	tx := uow.tx
	if tx == nil {
		return gorm.ErrInvalidTransaction
	}
	uow.tx = nil
	return finish(tx).Error
}

func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.session(), uow)
}

func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.session(), uow)
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.session(), uow)
}

// TrackAggregate records a write made through one of this unit's repositories.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, _ any) {
	uow.written = append(uow.written, id)
}

// Tracked lists the written aggregate ids in write order.
func (uow *GormUnitOfWork) Tracked() []kernel.UUID {
	return append([]kernel.UUID(nil), uow.written...)
}

func (uow *GormUnitOfWork) session() *gorm.DB {
	if uow.tx == nil {
		return uow.pool
	}
	return uow.tx
}
