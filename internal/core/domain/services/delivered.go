package services

import (
	"fmt"
	"time"

	"bakery/internal/core/domain/model/order"
)

// Names reported in errs.AggregationFailedError.
const (
	DeliveryStatsAggregatorName     = "deliveryStats"
	TimeSeriesAggregatorName        = "timeSeries"
	ProductDeliveryAggregatorName   = "productDeliveries"
	SalesAggregatorName             = "salesPerMonth"
	dashboardAssemblyAggregatorName = "dashboard"
)

// deliveredAt returns the delivery time of a delivered order. The boolean is
// false for orders in any other state. A delivered order without a delivery
// event in its history is malformed.
func deliveredAt(o *order.Order) (time.Time, bool, error) {
	if err := o.Validate(); err != nil {
		return time.Time{}, false, err
	}

	if o.State() != order.Delivered {
		return time.Time{}, false, nil
	}

	at, ok := o.DeliveredAt()
	if !ok {
		return time.Time{}, false, fmt.Errorf("order %s is delivered but has no delivery event", o.ID())
	}

	return at, true, nil
}
