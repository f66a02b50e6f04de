package jobs

import (
	"context"
	"log/slog"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StockRestorationJob replays pending stock restorations left behind by
// cancellations whose immediate release failed. Runs every 30 seconds; each
// pass releases whatever rows it can and leaves the rest for the next pass.
type StockRestorationJob struct {
	handler commands.RestorePendingStockCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStockRestorationJob creates a new job replaying pending restorations.
func NewStockRestorationJob(handler commands.RestorePendingStockCommandHandler, logger *slog.Logger) *StockRestorationJob {
	return &StockRestorationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stock_restoration_job"),
	}
}

// Start begins the stock restoration job on its 30 second schedule.
func (j *StockRestorationJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewRestorePendingStockCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Stock restoration job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stock restoration job started (running every 30 seconds)")
	return nil
}

// Stop stops the stock restoration job.
func (j *StockRestorationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stock restoration job stopped")
}
