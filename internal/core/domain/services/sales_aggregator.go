package services

import (
	"fmt"
	"slices"
	"time"

	"bakery/internal/core/domain/model/dashboard"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/product"
	"bakery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// SalesAggregator computes the sales per month matrix of the current year: one
// row per catalog category sorted by name, one column per month, each cell the
// sum of quantity x price of the orders delivered that month.
type SalesAggregator struct {
	loc *time.Location
}

// NewSalesAggregator creates an aggregator for the given zone. A nil zone means UTC.
func NewSalesAggregator(loc *time.Location) SalesAggregator {
	return SalesAggregator{loc: locationOrUTC(loc)}
}

// SalesPerMonth builds the matrix for the year containing now.
//
// Returns *errs.AggregationFailedError for negative quantities, products missing
// from the catalog and malformed delivered orders.
func (a SalesAggregator) SalesPerMonth(orders []*order.Order, catalog *product.Catalog, now time.Time) (dashboard.SalesMatrix, error) {
	fail := func(err error) (dashboard.SalesMatrix, error) {
		return dashboard.SalesMatrix{}, errs.NewAggregationFailedErrorWithCause(SalesAggregatorName, err)
	}

	categories := categoriesOf(catalog)
	rowOf := make(map[string]int, len(categories))
	rows := make([][]decimal.Decimal, len(categories))
	for i, c := range categories {
		rowOf[c] = i
		rows[i] = make([]decimal.Decimal, dashboard.MonthsPerYear)
		for m := range rows[i] {
			rows[i][m] = decimal.Zero
		}
	}

	year := now.In(a.loc).Year()
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, a.loc)
	to := from.AddDate(1, 0, 0)

	for _, o := range orders {
		at, delivered, err := deliveredAt(o)
		if err != nil {
			return fail(err)
		}
		if !delivered || !within(at, from, to) {
			continue
		}

		month := at.In(a.loc).Month() - 1
		for _, item := range o.Items() {
			if item.Quantity() < 0 {
				return fail(fmt.Errorf("order %s: negative quantity %d", o.ID(), item.Quantity()))
			}
			p, ok := catalog.Get(item.ProductID())
			if !ok {
				return fail(errs.NewObjectNotFoundError("productId", item.ProductID()))
			}

			row := rows[rowOf[p.Category()]]
			row[month] = row[month].Add(p.Price().Mul(decimal.NewFromInt(int64(item.Quantity()))))
		}
	}

	matrix, err := dashboard.NewSalesMatrix(categories, rows)
	if err != nil {
		return fail(err)
	}

	return matrix, nil
}

func categoriesOf(catalog *product.Catalog) []string {
	var categories []string
	for _, p := range catalog.Products() {
		if !slices.Contains(categories, p.Category()) {
			categories = append(categories, p.Category())
		}
	}
	slices.Sort(categories)

	return categories
}
