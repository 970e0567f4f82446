package services

import (
	"errors"
	"time"

	"bakery/internal/core/domain/model/dashboard"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/product"
	"bakery/internal/pkg/errs"
)

// DashboardBuilder runs every aggregator over one snapshot and assembles
// dashboard.Data. It is stateless: nothing is cached between builds.
//
// The build is fail-fast. If any aggregator fails the whole build fails with
// *errs.AggregationFailedError naming that aggregator; partial data is never
// returned.
//
// Example usage:
//
//	builder := NewDashboardBuilder(loc, DeliveryStatsOptions{})
//	data, err := builder.Build(snapshot.Orders, snapshot.Catalog, clock.Now())
type DashboardBuilder struct {
	loc      *time.Location
	stats    DeliveryStatsAggregator
	series   TimeSeriesAggregator
	products ProductDeliveryAggregator
	sales    SalesAggregator
}

// NewDashboardBuilder wires the aggregators for the given zone and options.
func NewDashboardBuilder(loc *time.Location, opts DeliveryStatsOptions) DashboardBuilder {
	loc = locationOrUTC(loc)

	return DashboardBuilder{
		loc:      loc,
		stats:    NewDeliveryStatsAggregator(loc, opts),
		series:   NewTimeSeriesAggregator(loc),
		products: NewProductDeliveryAggregator(),
		sales:    NewSalesAggregator(loc),
	}
}

// Location returns the time zone day and month boundaries are computed in.
func (b DashboardBuilder) Location() *time.Location {
	return b.loc
}

// Build produces the dashboard snapshot as of now. Product deliveries cover the
// current month.
func (b DashboardBuilder) Build(orders []*order.Order, catalog *product.Catalog, now time.Time) (*dashboard.Data, error) {
	stats, err := b.stats.Aggregate(orders, now)
	if err != nil {
		return nil, asAggregationFailed(DeliveryStatsAggregatorName, err)
	}

	month, err := b.series.DeliveriesThisMonth(orders, now)
	if err != nil {
		return nil, asAggregationFailed(TimeSeriesAggregatorName, err)
	}

	year, err := b.series.DeliveriesThisYear(orders, now)
	if err != nil {
		return nil, asAggregationFailed(TimeSeriesAggregatorName, err)
	}

	from, to := monthWindow(now, b.loc)
	products, err := b.products.Aggregate(orders, catalog, from, to)
	if err != nil {
		return nil, asAggregationFailed(ProductDeliveryAggregatorName, err)
	}

	sales, err := b.sales.SalesPerMonth(orders, catalog, now)
	if err != nil {
		return nil, asAggregationFailed(SalesAggregatorName, err)
	}

	data, err := dashboard.NewData(stats, month, year, sales, products)
	if err != nil {
		return nil, asAggregationFailed(dashboardAssemblyAggregatorName, err)
	}

	return data, nil
}

func asAggregationFailed(name string, err error) error {
	var failed *errs.AggregationFailedError
	if errors.As(err, &failed) {
		return failed
	}

	return errs.NewAggregationFailedErrorWithCause(name, err)
}
