package jobs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/robfig/cron/v3"

	"dispatch/internal/core/application/usecases/commands"
)

// AssignOrdersJob runs the dispatch tick.
// Every second it hands the oldest pending order to the fastest free courier.
// Ticks are single-flight: a tick still running when the next one fires makes
// the scheduler skip the new one instead of stacking them.
type AssignOrdersJob struct {
	handler commands.AssignOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAssignOrdersJob creates the dispatch tick job.
func NewAssignOrdersJob(handler commands.AssignOrdersCommandHandler, logger *slog.Logger) *AssignOrdersJob {
	jobLogger := logger.With("component", "assign_orders_job")

	return &AssignOrdersJob{
		handler: handler,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: jobLogger,
	}
}

// Start schedules the job to run every second.
// The context cancels in-flight ticks on shutdown.
func (j *AssignOrdersJob) Start(ctx context.Context) error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		j.run(ctx)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Assign orders job started (running every second)")
	return nil
}

// Stop stops the job.
func (j *AssignOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Assign orders job stopped")
}

func (j *AssignOrdersJob) run(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	cmd := commands.NewAssignOrdersCommand()
	if err := j.handler.Handle(ctx, cmd); err != nil {
		// An empty queue or a fully busy fleet is a quiet tick, not a failure.
		if !errors.Is(err, commands.ErrNoOrderFound) && !errors.Is(err, commands.ErrNoFreeCouriersFound) {
			j.logger.ErrorContext(ctx, "Assign orders job failed", "error", err)
		}
	}
}
