package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	assignOrdersJob *AssignOrdersJob
	moveCouriersJob *MoveCouriersJob
	messageRelayJob *MessageRelayJob
	cancelTicks     context.CancelFunc
}

// NewJobManager creates a job manager wiring all background jobs.
func NewJobManager(
	assignOrdersHandler commands.AssignOrdersCommandHandler,
	moveCouriersHandler commands.MoveCouriersCommandHandler,
	outboxRepository ports.OutboxRepository,
	producer ports.MessageBusProducer,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		assignOrdersJob: NewAssignOrdersJob(assignOrdersHandler, logger),
		moveCouriersJob: NewMoveCouriersJob(moveCouriersHandler, logger),
		messageRelayJob: NewMessageRelayJob(outboxRepository, producer, logger),
	}
}

// StartAll starts all scheduled jobs.
// If one fails to start, jobs already running are stopped again.
func (jm *JobManager) StartAll() error {
	ctx, cancel := context.WithCancel(context.Background())
	jm.cancelTicks = cancel

	if err := jm.assignOrdersJob.Start(ctx); err != nil {
		cancel()
		return fmt.Errorf("failed to start assign orders job: %w", err)
	}

	if err := jm.moveCouriersJob.Start(ctx); err != nil {
		jm.assignOrdersJob.Stop()
		cancel()
		return fmt.Errorf("failed to start move couriers job: %w", err)
	}

	if err := jm.messageRelayJob.Start(ctx); err != nil {
		jm.moveCouriersJob.Stop()
		jm.assignOrdersJob.Stop()
		cancel()
		return fmt.Errorf("failed to start message relay job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
// Cancelling the shared tick context aborts ticks that are still in flight.
func (jm *JobManager) StopAll() {
	if jm.cancelTicks != nil {
		jm.cancelTicks()
	}

	jm.messageRelayJob.Stop()
	jm.moveCouriersJob.Stop()
	jm.assignOrdersJob.Stop()
}
