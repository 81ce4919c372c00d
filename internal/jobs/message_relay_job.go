package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"dispatch/internal/core/ports"
)

// relayBatchSize caps how many outbox messages one relay tick publishes.
const relayBatchSize = 20

// MessageRelayJob drains the outbox to the message bus.
// Every second it reads a batch of unpublished messages in occurrence order,
// publishes each and marks it handled. A publish failure stops the tick before
// the failed message is marked, so it is retried next tick; consumers must
// tolerate the resulting at-least-once duplicates.
type MessageRelayJob struct {
	outboxRepository ports.OutboxRepository
	producer         ports.MessageBusProducer
	cron             *cron.Cron
	logger           *slog.Logger
}

// NewMessageRelayJob creates the outbox relay job.
func NewMessageRelayJob(
	outboxRepository ports.OutboxRepository,
	producer ports.MessageBusProducer,
	logger *slog.Logger,
) *MessageRelayJob {
	return &MessageRelayJob{
		outboxRepository: outboxRepository,
		producer:         producer,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "message_relay_job"),
	}
}

// Start schedules the job to run every second.
// The context cancels in-flight ticks on shutdown.
func (j *MessageRelayJob) Start(ctx context.Context) error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		j.run(ctx)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Message relay job started (running every second)")
	return nil
}

// Stop stops the job.
func (j *MessageRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Message relay job stopped")
}

func (j *MessageRelayJob) run(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	if err := j.relay(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Message relay job failed", "error", err)
	}
}

// relay publishes one batch. Messages keep their occurrence order; the first
// failure aborts the batch so no later message overtakes an unpublished one.
func (j *MessageRelayJob) relay(ctx context.Context) error {
	messages, err := j.outboxRepository.GetUnhandled(ctx, relayBatchSize)
	if err != nil {
		return err
	}

	for _, message := range messages {
		if err = j.producer.Publish(ctx, message); err != nil {
			return err
		}

		message.MarkHandled(time.Now())
		if err = j.outboxRepository.MarkHandled(ctx, message); err != nil {
			return err
		}
	}

	return nil
}
