package jobs

import (
	"context"
	"log/slog"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type CancelExpiredOrdersHandler interface {
	Handle(ctx context.Context, cmd commands.CancelExpiredOrdersCommand) (int, error)
}

// OrderExpiryJob cancels unpaid orders whose payment window has passed, releasing their
// reserved stock. A run still in progress when the next tick fires makes that tick a no-op.
type OrderExpiryJob struct {
	handler  CancelExpiredOrdersHandler
	cmd      commands.CancelExpiredOrdersCommand
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderExpiryJob creates the job. schedule is a six-field cron spec (with seconds).
func NewOrderExpiryJob(
	handler CancelExpiredOrdersHandler,
	cmd commands.CancelExpiredOrdersCommand,
	schedule string,
	logger *slog.Logger,
) *OrderExpiryJob {
	return &OrderExpiryJob{
		handler:  handler,
		cmd:      cmd,
		schedule: schedule,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "order_expiry_job"),
	}
}

// Start registers the job and starts the scheduler.
func (j *OrderExpiryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order expiry job started", "schedule", j.schedule)
	return nil
}

// Run performs one expiry pass. Failures are logged; the next tick retries.
func (j *OrderExpiryJob) Run(ctx context.Context) {
	cancelled, err := j.handler.Handle(ctx, j.cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Order expiry job failed", "cancelled", cancelled, "error", err)
		return
	}
	if cancelled > 0 {
		j.logger.InfoContext(ctx, "Expired orders cancelled", "cancelled", cancelled)
	}
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *OrderExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order expiry job stopped")
}
