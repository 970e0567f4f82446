package jobs

import (
	"fmt"
	"log/slog"

	"bakery/internal/core/application/usecases/queries"
)

// Job is a scheduled background task.
type Job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	jobs   []Job
	logger *slog.Logger
}

// NewJobManager creates the manager with the delivery stats job.
func NewJobManager(
	dashboardHandler queries.GetDashboardHandler,
	statsSchedule string,
	logger *slog.Logger,
) *JobManager {
	return NewJobManagerWithJobs(logger, NewDeliveryStatsJob(dashboardHandler, statsSchedule, logger))
}

// NewJobManagerWithJobs creates a manager over arbitrary jobs, started in order.
func NewJobManagerWithJobs(logger *slog.Logger, jobs ...Job) *JobManager {
	return &JobManager{jobs: jobs, logger: logger}
}

// StartAll starts all scheduled jobs.
// If one fails, the jobs already started are stopped again.
func (jm *JobManager) StartAll() error {
	for i, job := range jm.jobs {
		if err := job.Start(); err != nil {
			for k := i - 1; k >= 0; k-- {
				jm.jobs[k].Stop()
			}
			return fmt.Errorf("failed to start job %T: %w", job, err)
		}
	}

	return nil
}

// StopAll stops all scheduled jobs in reverse start order.
func (jm *JobManager) StopAll() {
	for i := len(jm.jobs) - 1; i >= 0; i-- {
		jm.jobs[i].Stop()
	}
}
