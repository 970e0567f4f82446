package queries

import (
	"context"

	"bakery/internal/core/domain/model/dashboard"
	"bakery/internal/core/domain/services"
	"bakery/internal/core/ports"
)

// GetDashboardQueryHandler builds the dashboard from one consistent snapshot.
// Aggregation errors are returned as *errs.AggregationFailedError; no partial
// dashboard is ever returned.
//
// Without a requested instant the dashboard is computed as of the moment the
// snapshot was taken, falling back to the clock for providers that leave
// TakenAt unset. A requested instant replays the snapshot as of that instant.
type GetDashboardQueryHandler struct {
	snapshots ports.OrderSnapshotProvider
	builder   services.DashboardBuilder
	clock     ports.Clock
}

func NewGetDashboardQueryHandler(
	snapshots ports.OrderSnapshotProvider,
	builder services.DashboardBuilder,
	clock ports.Clock,
) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{
		snapshots: snapshots,
		builder:   builder,
		clock:     clock,
	}
}

func (h GetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (*dashboard.Data, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := h.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	orders := snapshot.Orders
	now, replay := query.At()
	switch {
	case replay:
		orders = services.OrdersAsOf(orders, now)
	case !snapshot.TakenAt.IsZero():
		now = snapshot.TakenAt
	default:
		now = h.clock.Now()
	}

	return h.builder.Build(orders, snapshot.Catalog, now.In(h.builder.Location()))
}
