package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"dispatch/internal/core/application/usecases/commands"
)

// MoveCouriersJob runs the movement tick.
// Every two seconds each busy courier advances toward its delivery location;
// arrivals complete the order. Ticks are single-flight.
type MoveCouriersJob struct {
	handler commands.MoveCouriersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewMoveCouriersJob creates the movement tick job.
func NewMoveCouriersJob(handler commands.MoveCouriersCommandHandler, logger *slog.Logger) *MoveCouriersJob {
	return &MoveCouriersJob{
		handler: handler,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "move_couriers_job"),
	}
}

// Start schedules the job to run every two seconds.
// The context cancels in-flight ticks on shutdown.
func (j *MoveCouriersJob) Start(ctx context.Context) error {
	_, err := j.cron.AddFunc("*/2 * * * * *", func() {
		j.run(ctx)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Move couriers job started (running every two seconds)")
	return nil
}

// Stop stops the job.
func (j *MoveCouriersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Move couriers job stopped")
}

func (j *MoveCouriersJob) run(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	cmd := commands.NewMoveCouriersCommand()
	if err := j.handler.Handle(ctx, cmd); err != nil {
		j.logger.ErrorContext(ctx, "Move couriers job failed", "error", err)
	}
}
