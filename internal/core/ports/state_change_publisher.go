package ports

import (
	"context"

	"bakery/internal/core/domain/model/order"
)

// StateChangePublisher announces committed transitions to other services.
type StateChangePublisher interface {
	Publish(ctx context.Context, change order.StateChange) error
}
