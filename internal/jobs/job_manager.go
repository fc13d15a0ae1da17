package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/commands"
)

// ExpirySettings configure the order expiry job.
type ExpirySettings struct {
	Schedule       string
	PaymentTimeout time.Duration
	BatchSize      int
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderExpiryJob *OrderExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	cancelExpiredHandler CancelExpiredOrdersHandler,
	expiry ExpirySettings,
	logger *slog.Logger,
) (*JobManager, error) {
	cmd, err := commands.NewCancelExpiredOrdersCommand(expiry.PaymentTimeout, expiry.BatchSize)
	if err != nil {
		return nil, fmt.Errorf("invalid order expiry settings: %w", err)
	}

	return &JobManager{
		orderExpiryJob: NewOrderExpiryJob(cancelExpiredHandler, cmd, expiry.Schedule, logger),
	}, nil
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start order expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderExpiryJob.Stop()
}
