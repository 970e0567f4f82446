// Package jobs provides scheduled background tasks for the bakery service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with
// seconds) and managed through JobManager:
//
//	jobManager := jobs.NewJobManager(dashboardHandler, cfg.StatsJobSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatalf("Failed to start jobs: %v", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// DeliveryStatsJob rebuilds the dashboard for the current instant. Handed the
// observable dashboard handler, every run refreshes the delivery statistics
// gauges even when nobody opens the dashboard.
package jobs
