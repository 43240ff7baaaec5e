package jobs

import (
	"context"
	"time"

	"rentacar-crm/internal/config"
	"rentacar-crm/internal/logger"
	"rentacar-crm/internal/store"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	store  *store.BookingStore
	config *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(bookingStore *store.BookingStore, cfg *config.Config) *JobRunner {
	return &JobRunner{
		store:  bookingStore,
		config: cfg,
	}
}

// Config returns the runner's configuration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RefreshBookings re-fetches the full bookings list so the dashboard serves
// fresh rows without an agent-triggered reload. A failed refresh leaves the
// previous list in place.
func (jr *JobRunner) RefreshBookings() {
	jr.runWithRecovery("RefreshBookings", func() {
		timeout := time.Duration(jr.config.BookingAPI.TimeoutSeconds) * time.Second
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		bookings, err := jr.store.FetchAll(ctx)
		if err != nil {
			logger.Error("Bookings refresh failed", "error", err)
			return
		}
		logger.Debug("Bookings refreshed", "count", len(bookings))
	})
}
