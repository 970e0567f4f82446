package ports

import (
	"context"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate with its items and history.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists state and newly appended history of an existing order.
	// The write succeeds only if the stored version still equals aggregate.Version();
	// otherwise it returns *errs.ConcurrentModificationError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items and history.
	// Returns *errs.ObjectNotFoundError when no order has the given id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
