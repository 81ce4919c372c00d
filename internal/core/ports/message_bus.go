package ports

import (
	"context"

	"dispatch/internal/core/domain/model/outbox"
)

// MessageBusProducer publishes relayed outbox messages to the bus.
// Implementations key each message by the event id so consumers can
// deduplicate the at-least-once stream.
type MessageBusProducer interface {
	// Publish sends one message to the bus. An error leaves the message
	// unhandled, to be retried on a later relay tick.
	Publish(ctx context.Context, message outbox.Message) error

	// Close releases the underlying connection.
	Close() error
}
