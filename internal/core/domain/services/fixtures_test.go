package services_test

import (
	"testing"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// now is Wednesday 2026-04-15 10:30 UTC.
var now = time.Date(2026, time.April, 15, 10, 30, 0, 0, time.UTC)

func day(d int, hour int) time.Time {
	return time.Date(2026, time.April, d, hour, 0, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time {
	return &t
}

type catalogFixture struct {
	catalog  *product.Catalog
	baguette *product.Product
	rye      *product.Product
	eclair   *product.Product
}

func newCatalog(t *testing.T) catalogFixture {
	t.Helper()

	baguette, err := product.NewProduct(kernel.NewUUID(), "Baguette", "Bread", decimal.RequireFromString("1.20"))
	require.NoError(t, err)
	rye, err := product.NewProduct(kernel.NewUUID(), "Rye loaf", "Bread", decimal.RequireFromString("3.50"))
	require.NoError(t, err)
	eclair, err := product.NewProduct(kernel.NewUUID(), "Éclair", "Pastry", decimal.RequireFromString("2.75"))
	require.NoError(t, err)

	catalog, err := product.NewCatalog([]*product.Product{eclair, baguette, rye})
	require.NoError(t, err)

	return catalogFixture{catalog: catalog, baguette: baguette, rye: rye, eclair: eclair}
}

func line(p *product.Product, quantity int) order.Item {
	return order.RestoreItem(p.ID(), quantity)
}

// inState restores an order that is in the given state without delivery history.
func inState(t *testing.T, state order.State, due *time.Time, created time.Time) *order.Order {
	t.Helper()

	o, err := order.RestoreOrder(kernel.NewUUID(), "Café Rive", due, created, nil, state, nil, 1)
	require.NoError(t, err)
	return o
}

// deliveredAt restores a delivered order whose delivery event happened at the given time.
func deliveredAt(t *testing.T, at time.Time, items ...order.Item) *order.Order {
	t.Helper()

	id := kernel.NewUUID()
	created := at.Add(-48 * time.Hour)
	history := []order.StateChange{
		order.RestoreStateChange(id, order.New, order.Confirmed, created.Add(time.Minute), order.Barista),
		order.RestoreStateChange(id, order.Confirmed, order.Ready, at.Add(-time.Hour), order.Baker),
		order.RestoreStateChange(id, order.Ready, order.Delivered, at, order.Baker),
	}

	o, err := order.RestoreOrder(id, "Café Rive", ptr(at), created, items, order.Delivered, history, 3)
	require.NoError(t, err)
	return o
}

// newOrder creates a fresh order in the New state.
func newOrder(t *testing.T, p *product.Product) *order.Order {
	t.Helper()

	item, err := order.NewItem(p.ID(), 2)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), "Café Rive", ptr(day(16, 9)), now.Add(-time.Hour), []order.Item{item})
	require.NoError(t, err)
	return o
}
