package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"bakery/internal/adapters/out/postgres/orderrepo"
	"bakery/internal/adapters/out/postgres/productrepo"
	"bakery/internal/core/domain/model/product"
	"bakery/internal/core/ports"

	"gorm.io/gorm"
)

// GormSnapshotProvider reads orders and the catalog in one read-only
// REPEATABLE READ transaction, so a transition committed meanwhile is either
// fully visible or not at all.
type GormSnapshotProvider struct {
	db    *gorm.DB
	clock ports.Clock
}

func NewGormSnapshotProvider(db *gorm.DB, clock ports.Clock) *GormSnapshotProvider {
	return &GormSnapshotProvider{db: db, clock: clock}
}

func (p *GormSnapshotProvider) Snapshot(ctx context.Context) (ports.OrderSnapshot, error) {
	var snapshot ports.OrderSnapshot

	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orders, err := orderrepo.NewGormOrderRepository(tx).GetAll(ctx)
		if err != nil {
			return fmt.Errorf("load orders: %w", err)
		}

		products, err := productrepo.NewGormProductRepository(tx).GetAll(ctx)
		if err != nil {
			return fmt.Errorf("load products: %w", err)
		}

		catalog, err := product.NewCatalog(products)
		if err != nil {
			return fmt.Errorf("build catalog: %w", err)
		}

		snapshot = ports.OrderSnapshot{
			Orders:  orders,
			Catalog: catalog,
			TakenAt: p.clock.Now(),
		}
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return ports.OrderSnapshot{}, err
	}

	return snapshot, nil
}
