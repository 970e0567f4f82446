package queries

import (
	"context"
	"log/slog"
	"time"

	"bakery/internal/core/domain/model/dashboard"
	"bakery/internal/metrics"
	"bakery/internal/telemetry"
)

// GetDashboardHandler is implemented by GetDashboardQueryHandler and its decorators.
type GetDashboardHandler interface {
	Handle(ctx context.Context, query GetDashboardQuery) (*dashboard.Data, error)
}

// ObservableGetDashboardQueryHandler traces dashboard builds, records their
// duration and publishes the delivery counters as gauges.
type ObservableGetDashboardQueryHandler struct {
	handler GetDashboardHandler
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewObservableGetDashboardQueryHandler(
	handler GetDashboardHandler,
	logger *slog.Logger,
	m *metrics.Metrics,
) *ObservableGetDashboardQueryHandler {
	return &ObservableGetDashboardQueryHandler{
		handler: handler,
		logger:  logger.With("component", "GetDashboardQueryHandler"),
		metrics: m,
	}
}

func (o *ObservableGetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (*dashboard.Data, error) {
	ctx, span := telemetry.StartSpan(ctx, "GetDashboardQuery.Handle")
	start := time.Now()

	data, err := o.handler.Handle(ctx, query)

	o.metrics.RecordDashboardBuild(ctx, time.Since(start).Seconds(), err)
	telemetry.EndSpan(span, err)

	if err != nil {
		o.logger.ErrorContext(ctx, "dashboard build failed", "error", err)
		return nil, err
	}

	// Replays of past instants must not overwrite the live gauges.
	if _, replay := query.At(); !replay {
		o.metrics.RecordDeliveryStats(ctx, data.DeliveryStats())
	}

	o.logger.DebugContext(ctx, "dashboard built",
		"due_today", data.DeliveryStats().DueToday(),
		"delivered_today", data.DeliveryStats().DeliveredToday(),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return data, nil
}
