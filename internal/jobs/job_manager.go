// Package jobs provides the scheduled background tasks of the order service,
// implemented with github.com/robfig/cron/v3. The only job today is the
// active-orders cache refresh; JobManager stays as the single start/stop
// surface so new jobs slot in without touching the composition root's
// shutdown path.
package jobs

import (
	"fmt"
	"log/slog"

	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	cacheRefreshJob *CacheRefreshJob
}

// NewJobManager creates a job manager wired to the query handler the cache
// refresh depends on.
func NewJobManager(
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		cacheRefreshJob: NewCacheRefreshJob(getActiveOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.cacheRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start cache refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.cacheRefreshJob.Stop()
}
