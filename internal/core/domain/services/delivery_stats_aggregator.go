package services

import (
	"time"

	"bakery/internal/core/domain/model/dashboard"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"
)

// DeliveryStatsOptions tunes the counting policy of DeliveryStatsAggregator.
type DeliveryStatsOptions struct {
	// CountProblemAsDue includes Problem orders in dueToday and dueTomorrow.
	// They are always counted in notAvailableToday.
	CountProblemAsDue bool

	// NewOrdersWindow limits newOrders to New orders created within this trailing
	// window ending at now. Zero counts every New order.
	NewOrdersWindow time.Duration
}

// DeliveryStatsAggregator reduces an order snapshot to dashboard.DeliveryStats.
//
// Counting rules, with day windows [local midnight, next local midnight):
//   - deliveredToday: Delivered orders whose delivery event falls today
//   - dueToday / dueTomorrow: orders due in the window and still open
//     (New, Confirmed, Ready; Problem only with CountProblemAsDue)
//   - notAvailableToday: Problem orders due today
//   - newOrders: New orders, optionally limited to NewOrdersWindow
//
// Orders without a due date never count toward due-date buckets.
type DeliveryStatsAggregator struct {
	loc  *time.Location
	opts DeliveryStatsOptions
}

// NewDeliveryStatsAggregator creates an aggregator for the given zone. A nil zone means UTC.
func NewDeliveryStatsAggregator(loc *time.Location, opts DeliveryStatsOptions) DeliveryStatsAggregator {
	return DeliveryStatsAggregator{loc: locationOrUTC(loc), opts: opts}
}

// Aggregate counts the snapshot as of now.
//
// Returns *errs.AggregationFailedError for invalid orders or delivered orders
// without a delivery event.
func (a DeliveryStatsAggregator) Aggregate(orders []*order.Order, now time.Time) (dashboard.DeliveryStats, error) {
	todayStart, todayEnd := dayWindow(now, 0, a.loc)
	tomorrowStart, tomorrowEnd := dayWindow(now, 1, a.loc)

	var deliveredToday, dueToday, dueTomorrow, notAvailableToday, newOrders int

	for _, o := range orders {
		at, delivered, err := deliveredAt(o)
		if err != nil {
			return dashboard.DeliveryStats{}, errs.NewAggregationFailedErrorWithCause(DeliveryStatsAggregatorName, err)
		}
		if delivered && within(at, todayStart, todayEnd) {
			deliveredToday++
		}

		if a.isNew(o, now) {
			newOrders++
		}

		due, ok := o.DueDate()
		if !ok {
			continue
		}

		switch {
		case within(due, todayStart, todayEnd):
			if a.isOpen(o.State()) {
				dueToday++
			}
			if o.State() == order.Problem {
				notAvailableToday++
			}
		case within(due, tomorrowStart, tomorrowEnd):
			if a.isOpen(o.State()) {
				dueTomorrow++
			}
		}
	}

	stats, err := dashboard.NewDeliveryStats(deliveredToday, dueToday, dueTomorrow, notAvailableToday, newOrders)
	if err != nil {
		return dashboard.DeliveryStats{}, errs.NewAggregationFailedErrorWithCause(DeliveryStatsAggregatorName, err)
	}

	return stats, nil
}

func (a DeliveryStatsAggregator) isOpen(s order.State) bool {
	switch s {
	case order.New, order.Confirmed, order.Ready:
		return true
	case order.Problem:
		return a.opts.CountProblemAsDue
	default:
		return false
	}
}

func (a DeliveryStatsAggregator) isNew(o *order.Order, now time.Time) bool {
	if o.State() != order.New {
		return false
	}
	if a.opts.NewOrdersWindow <= 0 {
		return true
	}

	created := o.CreatedAt()
	return !created.Before(now.Add(-a.opts.NewOrdersWindow)) && !created.After(now)
}
