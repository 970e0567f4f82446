// Package queries contains read-only operations of the service.
// Queries never modify state; each one is a struct with a ConstructorGuard and
// a handler returning response values.
package queries

import (
	"errors"
	"time"

	"bakery/internal/pkg/guard"
)

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

// GetDashboardQuery requests the dashboard statistics, either as of now or as
// of a past instant.
//
// Example:
//
//	query := NewGetDashboardQuery(nil)
//	data, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to build dashboard: %w", err)
//	}
//	fmt.Printf("%d orders due today\n", data.DeliveryStats().DueToday())
type GetDashboardQuery struct {
	at *time.Time

	guard guard.ConstructorGuard
}

// NewGetDashboardQuery creates the query. A nil at means the current time.
func NewGetDashboardQuery(at *time.Time) GetDashboardQuery {
	q := GetDashboardQuery{guard: guard.NewConstructorGuard()}
	if at != nil {
		t := *at
		q.at = &t
	}
	return q
}

func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// At returns the requested instant, if any.
func (q GetDashboardQuery) At() (time.Time, bool) {
	if q.at == nil {
		return time.Time{}, false
	}
	return *q.at, true
}
