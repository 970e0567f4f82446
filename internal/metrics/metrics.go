// Package metrics defines the OpenTelemetry instruments of the bakery service.
package metrics

import (
	"context"
	"fmt"

	"bakery/internal/core/domain/model/dashboard"
	"bakery/internal/core/domain/model/order"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

type Metrics struct {
	transitionsTotal       metric.Int64Counter
	dashboardBuildDuration metric.Float64Histogram
	deliveryStats          metric.Int64Gauge
	publishFailuresTotal   metric.Int64Counter
}

func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	m.transitionsTotal, err = meter.Int64Counter(
		"order_transitions_total",
		metric.WithDescription("Order state transitions requested, by outcome"),
		metric.WithUnit("{transition}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create order_transitions_total counter: %w", err)
	}

	m.dashboardBuildDuration, err = meter.Float64Histogram(
		"dashboard_build_duration_seconds",
		metric.WithDescription("Duration of dashboard snapshot reads and aggregation"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("create dashboard_build_duration_seconds histogram: %w", err)
	}

	m.deliveryStats, err = meter.Int64Gauge(
		"delivery_stats",
		metric.WithDescription("Latest delivery counters shown on the dashboard"),
		metric.WithUnit("{order}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create delivery_stats gauge: %w", err)
	}

	m.publishFailuresTotal, err = meter.Int64Counter(
		"order_state_change_publish_failures_total",
		metric.WithDescription("State change events that could not be published"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create order_state_change_publish_failures_total counter: %w", err)
	}

	return m, nil
}

// NewNoopMetrics returns instruments that record nothing.
func NewNoopMetrics() *Metrics {
	m, _ := NewMetrics(noop.NewMeterProvider().Meter("bakery"))
	return m
}

// RecordTransition counts an applied transition.
func (m *Metrics) RecordTransition(ctx context.Context, from, to order.State, role order.Role) {
	m.transitionsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("from", from.String()),
		attribute.String("to", to.String()),
		attribute.String("role", role.String()),
		attribute.String("status", statusSuccess),
	))
}

// RecordRejectedTransition counts a transition that was not applied. The source
// state is unknown to the caller, so the series carries no from attribute.
func (m *Metrics) RecordRejectedTransition(ctx context.Context, to order.State, role order.Role) {
	m.transitionsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("to", to.String()),
		attribute.String("role", role.String()),
		attribute.String("status", statusError),
	))
}

func (m *Metrics) RecordDashboardBuild(ctx context.Context, seconds float64, err error) {
	m.dashboardBuildDuration.Record(ctx, seconds, metric.WithAttributes(
		attribute.String("status", status(err)),
	))
}

// RecordDeliveryStats publishes every counter of stats as one gauge series per counter.
func (m *Metrics) RecordDeliveryStats(ctx context.Context, stats dashboard.DeliveryStats) {
	for name, value := range map[string]int{
		"delivered_today":     stats.DeliveredToday(),
		"due_today":           stats.DueToday(),
		"due_tomorrow":        stats.DueTomorrow(),
		"not_available_today": stats.NotAvailableToday(),
		"new_orders":          stats.NewOrders(),
	} {
		m.deliveryStats.Record(ctx, int64(value), metric.WithAttributes(attribute.String("counter", name)))
	}
}

func (m *Metrics) RecordPublishFailure(ctx context.Context, to order.State) {
	m.publishFailuresTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("to", to.String())))
}

func status(err error) string {
	if err != nil {
		return statusError
	}
	return statusSuccess
}
