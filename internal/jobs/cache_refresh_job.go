package jobs

import (
	"context"
	"log/slog"

	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// CacheRefreshJob keeps the active-orders cache warm. It runs the listing
// query every 25 seconds, just inside the 30-second TTL, so interactive
// reads rarely pay for a cold store query.
type CacheRefreshJob struct {
	handler queries.GetActiveOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCacheRefreshJob creates a job that periodically refreshes the
// active-orders projection through the query handler.
func NewCacheRefreshJob(handler queries.GetActiveOrdersQueryHandler, logger *slog.Logger) *CacheRefreshJob {
	return &CacheRefreshJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "cache_refresh_job"),
	}
}

// Start begins the refresh schedule.
func (j *CacheRefreshJob) Start() error {
	_, err := j.cron.AddFunc("*/25 * * * * *", func() {
		ctx := context.Background()

		if _, handleErr := j.handler.Handle(ctx, queries.NewGetActiveOrdersQuery()); handleErr != nil {
			j.logger.ErrorContext(ctx, "Cache refresh job failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cache refresh job started (running every 25 seconds)")
	return nil
}

// Stop stops the refresh schedule.
func (j *CacheRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cache refresh job stopped")
}
