package commands

import (
	"context"
	"errors"
	"log/slog"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/metrics"
	"bakery/internal/telemetry"

	"go.opentelemetry.io/otel/attribute"
)

// ChangeOrderStateHandler is implemented by ChangeOrderStateCommandHandler and its decorators.
type ChangeOrderStateHandler interface {
	Handle(ctx context.Context, cmd ChangeOrderStateCommand) (order.StateChange, error)
}

// ObservableChangeOrderStateCommandHandler adds tracing, logging and metrics to a
// ChangeOrderStateHandler. A committed transition whose event could not be
// published is logged, counted and reported to the caller as a success.
type ObservableChangeOrderStateCommandHandler struct {
	handler ChangeOrderStateHandler
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewObservableChangeOrderStateCommandHandler(
	handler ChangeOrderStateHandler,
	logger *slog.Logger,
	m *metrics.Metrics,
) *ObservableChangeOrderStateCommandHandler {
	return &ObservableChangeOrderStateCommandHandler{
		handler: handler,
		logger:  logger.With("component", "ChangeOrderStateCommandHandler"),
		metrics: m,
	}
}

func (o *ObservableChangeOrderStateCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStateCommand) (order.StateChange, error) {
	ctx, span := telemetry.StartSpan(ctx, "ChangeOrderStateCommand.Handle",
		attribute.String("order.id", cmd.OrderID().String()),
		attribute.String("order.target_state", cmd.Target().String()),
		attribute.String("actor.role", cmd.Role().String()),
	)

	change, err := o.handler.Handle(ctx, cmd)

	if errors.Is(err, ErrStateChangeNotPublished) {
		o.metrics.RecordPublishFailure(ctx, change.To())
		o.logger.WarnContext(ctx, "state change not published",
			"order_id", cmd.OrderID().String(),
			"to", change.To().String(),
			"error", err,
		)
		err = nil
	}

	telemetry.EndSpan(span, err)

	if err != nil {
		o.metrics.RecordRejectedTransition(ctx, cmd.Target(), cmd.Role())
		o.logger.InfoContext(ctx, "order transition rejected",
			"order_id", cmd.OrderID().String(),
			"target", cmd.Target().String(),
			"role", cmd.Role().String(),
			"error", err,
		)
		return order.StateChange{}, err
	}

	o.metrics.RecordTransition(ctx, change.From(), change.To(), change.Role())
	o.logger.InfoContext(ctx, "order transitioned",
		"order_id", cmd.OrderID().String(),
		"from", change.From().String(),
		"to", change.To().String(),
		"role", change.Role().String(),
	)

	return change, nil
}
