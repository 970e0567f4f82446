package jobs

import (
	"context"
	"log/slog"
	"time"

	"bakery/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultDeliveryStatsSchedule refreshes the delivery statistics once a minute.
const DefaultDeliveryStatsSchedule = "0 * * * * *"

// DeliveryStatsJob rebuilds the dashboard on a schedule so the delivery
// statistics gauges stay current between dashboard requests.
type DeliveryStatsJob struct {
	handler  queries.GetDashboardHandler
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDeliveryStatsJob creates the job. The schedule is a six-field cron
// expression with seconds; an empty schedule falls back to DefaultDeliveryStatsSchedule.
func NewDeliveryStatsJob(handler queries.GetDashboardHandler, schedule string, logger *slog.Logger) *DeliveryStatsJob {
	if schedule == "" {
		schedule = DefaultDeliveryStatsSchedule
	}

	return &DeliveryStatsJob{
		handler:  handler,
		schedule: schedule,
		timeout:  30 * time.Second,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "delivery_stats_job"),
	}
}

// Start registers the refresh and starts the scheduler.
func (j *DeliveryStatsJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery stats job started", "schedule", j.schedule)
	return nil
}

// Run builds one dashboard snapshot for the current instant.
func (j *DeliveryStatsJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	data, err := j.handler.Handle(ctx, queries.NewGetDashboardQuery(nil))
	if err != nil {
		j.logger.ErrorContext(ctx, "Delivery stats job failed", "error", err)
		return
	}

	stats := data.DeliveryStats()
	j.logger.DebugContext(ctx, "Delivery stats refreshed",
		"delivered_today", stats.DeliveredToday(),
		"due_today", stats.DueToday(),
		"due_tomorrow", stats.DueTomorrow(),
		"not_available_today", stats.NotAvailableToday(),
		"new_orders", stats.NewOrders(),
	)
}

// Stop stops the scheduler and waits for a running refresh to finish.
func (j *DeliveryStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Delivery stats job stopped")
}
