package ports

import (
	"context"
	"time"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/product"
)

// OrderSnapshot is a consistent, read-only view of all orders and the catalog.
type OrderSnapshot struct {
	Orders  []*order.Order
	Catalog *product.Catalog

	// TakenAt is when the snapshot was read.
	TakenAt time.Time
}

// OrderSnapshotProvider returns the whole order population as of one instant.
// Transitions committed while the snapshot is read must not be partially visible.
type OrderSnapshotProvider interface {
	Snapshot(ctx context.Context) (OrderSnapshot, error)
}
