// Package postgres provides the GORM-based Unit of Work and the read snapshot
// used by the dashboard. A unit of work groups the repository calls of one use
// case into a single database transaction.
//
// Key Features:
//   - One transaction shared by the order and product repositories
//   - Optimistic concurrency on orders through the stored version column
//   - Consistent read-only snapshots in a REPEATABLE READ transaction
//   - Schema migrations applied at startup with golang-migrate
//
// Usage Patterns:
//
// Changing one order:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	o, err := uow.OrderRepository().Get(ctx, id)
//	if err != nil {
//	    return err
//	}
//	if _, err = o.ChangeState(order.Confirmed, order.Barista, now); err != nil {
//	    return err
//	}
//	if err = uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit returns gorm.ErrInvalidTransaction and
// changes nothing, so the deferred call is safe on every path.
//
// Reading without a transaction:
//
//	products, err := factory.Create().ProductRepository().GetAll(ctx)
//
// Repositories obtained before Begin run on the connection pool; obtain them
// again after Begin to join the transaction.
//
// Error Handling:
//   - Begin and Commit errors are returned unchanged from GORM
//   - Update returns *errs.ConcurrentModificationError when the stored version
//     moved since the order was read, and the caller should roll back
//   - Missing rows are reported as *errs.ObjectNotFoundError
//
// Concurrency Considerations:
//   - A UnitOfWork is not safe for concurrent use; create one per operation
//   - The factory and the underlying *gorm.DB pool are shared freely
//   - Concurrent transitions of one order are serialized by the OrderLocker
//     before the transaction starts; the version check catches anything that
//     slips past it
//   - GormSnapshotProvider never blocks writers: the snapshot transaction is
//     read-only
package postgres

import (
	"context"

	"bakery/internal/adapters/out/postgres/orderrepo"
	"bakery/internal/adapters/out/postgres/productrepo"
	"bakery/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
// Every Create call returns a fresh unit of work, so each use case gets its own
// transaction.
//
// Example:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with no transaction started.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction. Between Begin and
// Commit or Rollback every repository it hands out writes through the same
// *gorm.DB transaction handle; outside of that window they use the pool.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a transaction. Calling Begin on an active unit of work is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes the transaction. Returns gorm.ErrInvalidTransaction when
// no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Returns gorm.ErrInvalidTransaction when
// no transaction is active, which is the case after a successful Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
