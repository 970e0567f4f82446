package metrics_test

import (
	"testing"

	"bakery/internal/core/domain/model/dashboard"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func setup(t *testing.T) (*metrics.Metrics, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	m, err := metrics.NewMetrics(provider.Meter("test"))
	require.NoError(t, err)

	return m, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader, name string) metricdata.Metrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(t.Context(), &rm))

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == name {
				return m
			}
		}
	}

	require.Failf(t, "metric not found", "%s", name)
	return metricdata.Metrics{}
}

func TestMetrics_RecordTransition(t *testing.T) {
	m, reader := setup(t)

	m.RecordTransition(t.Context(), order.Ready, order.Delivered, order.Baker)
	m.RecordTransition(t.Context(), order.Ready, order.Delivered, order.Baker)
	m.RecordRejectedTransition(t.Context(), order.Ready, order.Baker)

	sum, ok := collect(t, reader, "order_transitions_total").Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 2)

	for _, dp := range sum.DataPoints {
		status, _ := dp.Attributes.Value(attribute.Key("status"))
		if status.AsString() == "success" {
			assert.Equal(t, int64(2), dp.Value)
			to, _ := dp.Attributes.Value(attribute.Key("to"))
			assert.Equal(t, "DELIVERED", to.AsString())
		} else {
			assert.Equal(t, int64(1), dp.Value)
			_, hasFrom := dp.Attributes.Value(attribute.Key("from"))
			assert.False(t, hasFrom)
		}
	}
}

func TestMetrics_RecordDashboardBuild(t *testing.T) {
	m, reader := setup(t)

	m.RecordDashboardBuild(t.Context(), 0.25, nil)

	hist, ok := collect(t, reader, "dashboard_build_duration_seconds").Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(1), hist.DataPoints[0].Count)
	assert.InDelta(t, 0.25, hist.DataPoints[0].Sum, 1e-9)
}

func TestMetrics_RecordDeliveryStats(t *testing.T) {
	m, reader := setup(t)
	stats, err := dashboard.NewDeliveryStats(4, 2, 1, 1, 3)
	require.NoError(t, err)

	m.RecordDeliveryStats(t.Context(), stats)

	gauge, ok := collect(t, reader, "delivery_stats").Data.(metricdata.Gauge[int64])
	require.True(t, ok)
	values := map[string]int64{}
	for _, dp := range gauge.DataPoints {
		counter, _ := dp.Attributes.Value(attribute.Key("counter"))
		values[counter.AsString()] = dp.Value
	}
	assert.Equal(t, map[string]int64{
		"delivered_today":     4,
		"due_today":           2,
		"due_tomorrow":        1,
		"not_available_today": 1,
		"new_orders":          3,
	}, values)
}

func TestMetrics_RecordPublishFailure(t *testing.T) {
	m, reader := setup(t)

	m.RecordPublishFailure(t.Context(), order.Cancelled)

	sum, ok := collect(t, reader, "order_state_change_publish_failures_total").Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(1), sum.DataPoints[0].Value)
}

func TestNewNoopMetrics(t *testing.T) {
	m := metrics.NewNoopMetrics()

	require.NotNil(t, m)
	assert.NotPanics(t, func() {
		m.RecordTransition(t.Context(), order.New, order.Confirmed, order.Barista)
		m.RecordDashboardBuild(t.Context(), 1, nil)
	})
}
