// Package kafka publishes relayed outbox messages to the message bus.
package kafka

import (
	"context"
	"log/slog"

	kafkago "github.com/segmentio/kafka-go"

	"dispatch/internal/core/domain/model/outbox"
	"dispatch/internal/core/ports"
)

// Producer implements ports.MessageBusProducer on a kafka-go writer.
// Messages are keyed by event id so consumers can deduplicate the
// at-least-once stream the relay produces.
type Producer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewProducer creates a producer publishing to the given topic.
func NewProducer(brokers []string, topic string, logger *slog.Logger) *Producer {
	return &Producer{
		writer: &kafkago.Writer{
			Addr:     kafkago.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafkago.Hash{},
		},
		logger: logger.With("component", "kafka_producer"),
	}
}

// Publish sends one outbox message to the bus. The event type travels as a
// message header so consumers can route without parsing the payload.
func (p *Producer) Publish(ctx context.Context, message outbox.Message) error {
	msg := kafkago.Message{
		Key:   []byte(message.ID.String()),
		Value: message.Payload,
		Headers: []kafkago.Header{
			{Key: "event-type", Value: []byte(message.EventType)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.ErrorContext(ctx, "Failed to publish message",
			"messageId", message.ID, "eventType", message.EventType, "error", err)
		return err
	}

	p.logger.DebugContext(ctx, "Message published",
		"messageId", message.ID, "eventType", message.EventType)
	return nil
}

// Close releases the underlying writer connection.
func (p *Producer) Close() error {
	return p.writer.Close()
}

var _ ports.MessageBusProducer = (*Producer)(nil)
