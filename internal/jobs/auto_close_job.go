package jobs

import (
	"context"
	"log/slog"

	"completion/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AutoCloseJob manages the scheduled sweep that closes delivered orders the
// customer never closed. Runs once per hour.
type AutoCloseJob struct {
	handler   commands.CloseStaleOrdersCommandHandler
	cron      *cron.Cron
	logger    *slog.Logger
	hours     int
	batchSize int
}

// NewAutoCloseJob creates a new job for closing stale orders.
// Uses CloseStaleOrdersCommandHandler to sweep delivered orders older than
// the given number of hours, at most batchSize per sweep.
func NewAutoCloseJob(
	handler commands.CloseStaleOrdersCommandHandler,
	hours int,
	batchSize int,
	logger *slog.Logger,
) *AutoCloseJob {
	return &AutoCloseJob{
		handler:   handler,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "auto_close_job"),
		hours:     hours,
		batchSize: batchSize,
	}
}

// Start begins the auto-close job to run at the top of every hour.
func (j *AutoCloseJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewCloseStaleOrdersCommand(j.hours, j.batchSize, false)
		if err != nil {
			j.logger.ErrorContext(ctx, "Auto-close sweep misconfigured", "error", err)
			return
		}

		if _, err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Auto-close sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto-close job started (running hourly)")
	return nil
}

// Stop stops the auto-close job.
func (j *AutoCloseJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Auto-close job stopped")
}
