package dashboard

import (
	"errors"
	"fmt"

	"bakery/internal/pkg/errs"
)

const (
	minDaysInMonth = 28
	maxDaysInMonth = 31
)

// Data is the complete dashboard snapshot for one request. It is built in one
// piece and never updated afterwards.
type Data struct {
	stats               DeliveryStats
	deliveriesThisMonth []int
	deliveriesThisYear  []int
	salesPerMonth       SalesMatrix
	productDeliveries   ProductDeliveries
}

// NewData validates the series shapes: one entry per day of the month (28 to 31),
// one entry per month of the year, no negative counts.
func NewData(
	stats DeliveryStats,
	deliveriesThisMonth []int,
	deliveriesThisYear []int,
	salesPerMonth SalesMatrix,
	productDeliveries ProductDeliveries,
) (*Data, error) {
	var monthErr, yearErr error
	if n := len(deliveriesThisMonth); n < minDaysInMonth || n > maxDaysInMonth {
		monthErr = errs.NewValueIsOutOfRangeError("deliveriesThisMonth", n, minDaysInMonth, maxDaysInMonth)
	}
	if n := len(deliveriesThisYear); n != MonthsPerYear {
		yearErr = errs.NewValueIsOutOfRangeError("deliveriesThisYear", n, MonthsPerYear, MonthsPerYear)
	}

	if err := errors.Join(
		monthErr,
		yearErr,
		nonNegativeSeries("deliveriesThisMonth", deliveriesThisMonth),
		nonNegativeSeries("deliveriesThisYear", deliveriesThisYear),
	); err != nil {
		return nil, err
	}

	return &Data{
		stats:               stats,
		deliveriesThisMonth: append([]int(nil), deliveriesThisMonth...),
		deliveriesThisYear:  append([]int(nil), deliveriesThisYear...),
		salesPerMonth:       salesPerMonth,
		productDeliveries:   productDeliveries,
	}, nil
}

func (d *Data) DeliveryStats() DeliveryStats {
	return d.stats
}

// DeliveriesThisMonth returns deliveries per day; index i is day i+1.
func (d *Data) DeliveriesThisMonth() []int {
	return append([]int(nil), d.deliveriesThisMonth...)
}

// DeliveriesThisYear returns deliveries per month; index i is month i+1.
func (d *Data) DeliveriesThisYear() []int {
	return append([]int(nil), d.deliveriesThisYear...)
}

func (d *Data) SalesPerMonth() SalesMatrix {
	return d.salesPerMonth
}

func (d *Data) ProductDeliveries() ProductDeliveries {
	return d.productDeliveries
}

func nonNegativeSeries(param string, series []int) error {
	for i, v := range series {
		if v < 0 {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("%s[%d]", param, i), fmt.Errorf("%d is negative", v))
		}
	}
	return nil
}
