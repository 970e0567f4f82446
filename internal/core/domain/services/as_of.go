package services

import (
	"time"

	"bakery/internal/core/domain/model/order"
)

// OrdersAsOf rebuilds a snapshot as it stood at the given instant: orders
// created later are dropped and the rest carry the state of their last change
// up to at. Unconstructed orders are passed through so the aggregators report
// them.
func OrdersAsOf(orders []*order.Order, at time.Time) []*order.Order {
	past := make([]*order.Order, 0, len(orders))

	for _, o := range orders {
		if o.Validate() != nil {
			past = append(past, o)
			continue
		}

		if p, ok := o.AsOf(at); ok {
			past = append(past, p)
		}
	}

	return past
}
