// Package telemetry sets up OpenTelemetry tracing and metrics for the bakery
// service and provides the structured logger used across components.
//
// Initialize installs global tracer and meter providers backed by OTLP/gRPC
// exporters. Both signals can be disabled, in which case the otel no-op
// providers stay in place and instrumentation costs nothing.
//
// NewLogger returns a JSON slog.Logger that adds trace_id and span_id to every
// record logged with a span in its context.
package telemetry
