package services

import (
	"time"

	"bakery/internal/core/domain/model/dashboard"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"
)

// TimeSeriesAggregator buckets delivered orders by day of the current month and
// by month of the current year. Results are dense: empty buckets hold zero.
type TimeSeriesAggregator struct {
	loc *time.Location
}

// NewTimeSeriesAggregator creates an aggregator for the given zone. A nil zone means UTC.
func NewTimeSeriesAggregator(loc *time.Location) TimeSeriesAggregator {
	return TimeSeriesAggregator{loc: locationOrUTC(loc)}
}

// DeliveriesThisMonth returns one counter per day of the month containing now;
// index i holds deliveries on day i+1.
func (a TimeSeriesAggregator) DeliveriesThisMonth(orders []*order.Order, now time.Time) ([]int, error) {
	from, to := monthWindow(now, a.loc)
	series := make([]int, daysInMonth(now, a.loc))

	err := a.each(orders, from, to, func(at time.Time) {
		series[at.Day()-1]++
	})
	if err != nil {
		return nil, err
	}

	return series, nil
}

// DeliveriesThisYear returns twelve counters for the year containing now;
// index i holds deliveries in month i+1.
func (a TimeSeriesAggregator) DeliveriesThisYear(orders []*order.Order, now time.Time) ([]int, error) {
	year := now.In(a.loc).Year()
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, a.loc)
	series := make([]int, dashboard.MonthsPerYear)

	err := a.each(orders, from, from.AddDate(1, 0, 0), func(at time.Time) {
		series[at.Month()-1]++
	})
	if err != nil {
		return nil, err
	}

	return series, nil
}

// each calls fn with the local delivery time of every order delivered in [from, to).
func (a TimeSeriesAggregator) each(orders []*order.Order, from, to time.Time, fn func(time.Time)) error {
	for _, o := range orders {
		at, delivered, err := deliveredAt(o)
		if err != nil {
			return errs.NewAggregationFailedErrorWithCause(TimeSeriesAggregatorName, err)
		}
		if delivered && within(at, from, to) {
			fn(at.In(a.loc))
		}
	}

	return nil
}
