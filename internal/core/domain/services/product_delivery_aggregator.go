package services

import (
	"fmt"
	"slices"
	"time"

	"bakery/internal/core/domain/model/dashboard"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/product"
	"bakery/internal/pkg/errs"
)

// ProductDeliveryAggregator tallies delivered quantity per product.
//
// Ordering: descending quantity, ties by first encounter in the snapshot, so the
// same input always yields the same output. Products with a zero total are omitted.
type ProductDeliveryAggregator struct{}

func NewProductDeliveryAggregator() ProductDeliveryAggregator {
	return ProductDeliveryAggregator{}
}

// Aggregate sums item quantities of orders delivered in [from, to).
//
// Returns *errs.AggregationFailedError for negative quantities, products missing
// from the catalog and malformed delivered orders.
func (ProductDeliveryAggregator) Aggregate(
	orders []*order.Order,
	catalog *product.Catalog,
	from, to time.Time,
) (dashboard.ProductDeliveries, error) {
	fail := func(err error) (dashboard.ProductDeliveries, error) {
		return dashboard.ProductDeliveries{}, errs.NewAggregationFailedErrorWithCause(ProductDeliveryAggregatorName, err)
	}

	totals := make(map[kernel.UUID]int)
	var seen []kernel.UUID

	for _, o := range orders {
		at, delivered, err := deliveredAt(o)
		if err != nil {
			return fail(err)
		}
		if !delivered || !within(at, from, to) {
			continue
		}

		for _, item := range o.Items() {
			if item.Quantity() < 0 {
				return fail(fmt.Errorf("order %s: negative quantity %d", o.ID(), item.Quantity()))
			}
			if _, ok := catalog.Get(item.ProductID()); !ok {
				return fail(errs.NewObjectNotFoundError("productId", item.ProductID()))
			}

			if _, ok := totals[item.ProductID()]; !ok {
				seen = append(seen, item.ProductID())
			}
			totals[item.ProductID()] += item.Quantity()
		}
	}

	entries := make([]dashboard.ProductDelivery, 0, len(seen))
	for _, id := range seen {
		if totals[id] == 0 {
			continue
		}
		p, _ := catalog.Get(id)
		entries = append(entries, dashboard.ProductDelivery{ProductID: id, Name: p.Name(), Quantity: totals[id]})
	}

	slices.SortStableFunc(entries, func(a, b dashboard.ProductDelivery) int {
		return b.Quantity - a.Quantity
	})

	result, err := dashboard.NewProductDeliveries(entries)
	if err != nil {
		return fail(err)
	}

	return result, nil
}
