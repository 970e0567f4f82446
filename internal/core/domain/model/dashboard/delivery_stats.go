package dashboard

import (
	"errors"

	"bakery/internal/pkg/errs"
)

// DeliveryStats is the delivery counter snapshot shown at the top of the dashboard.
// All counters are non-negative.
type DeliveryStats struct {
	deliveredToday    int
	dueToday          int
	dueTomorrow       int
	notAvailableToday int
	newOrders         int
}

// NewDeliveryStats validates and creates a DeliveryStats value.
func NewDeliveryStats(deliveredToday, dueToday, dueTomorrow, notAvailableToday, newOrders int) (DeliveryStats, error) {
	if err := errors.Join(
		nonNegative("deliveredToday", deliveredToday),
		nonNegative("dueToday", dueToday),
		nonNegative("dueTomorrow", dueTomorrow),
		nonNegative("notAvailableToday", notAvailableToday),
		nonNegative("newOrders", newOrders),
	); err != nil {
		return DeliveryStats{}, err
	}

	return DeliveryStats{
		deliveredToday:    deliveredToday,
		dueToday:          dueToday,
		dueTomorrow:       dueTomorrow,
		notAvailableToday: notAvailableToday,
		newOrders:         newOrders,
	}, nil
}

// DeliveredToday counts orders delivered since local midnight.
func (s DeliveryStats) DeliveredToday() int { return s.deliveredToday }

// DueToday counts open orders due today.
func (s DeliveryStats) DueToday() int { return s.dueToday }

// DueTomorrow counts open orders due tomorrow.
func (s DeliveryStats) DueTomorrow() int { return s.dueTomorrow }

// NotAvailableToday counts orders due today that are in the Problem state.
func (s DeliveryStats) NotAvailableToday() int { return s.notAvailableToday }

// NewOrders counts orders still waiting for confirmation.
func (s DeliveryStats) NewOrders() int { return s.newOrders }

func nonNegative(param string, value int) error {
	if value < 0 {
		return errs.NewValueIsOutOfRangeError(param, value, 0, "unbounded")
	}
	return nil
}
