// Package kafka consumes upstream events that drive order intake.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	kafkago "github.com/segmentio/kafka-go"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
)

// basketConfirmedEvent is the upstream payload announcing a confirmed basket.
// The basket id becomes the order id, which keeps redeliveries idempotent.
type basketConfirmedEvent struct {
	BasketID string `json:"basketId"`
	Street   string `json:"street"`
}

// BasketConfirmedConsumer turns BasketConfirmed events into orders.
// Each message is decoded into a CreateOrderCommand; malformed or invalid
// messages are logged and skipped so one bad payload cannot stall the topic.
type BasketConfirmedConsumer struct {
	reader  *kafkago.Reader
	handler commands.CreateOrderCommandHandler
	logger  *slog.Logger
}

// NewBasketConfirmedConsumer creates a consumer for the given topic.
func NewBasketConfirmedConsumer(
	brokers []string,
	topic string,
	groupID string,
	handler commands.CreateOrderCommandHandler,
	logger *slog.Logger,
) *BasketConfirmedConsumer {
	return &BasketConfirmedConsumer{
		reader: kafkago.NewReader(kafkago.ReaderConfig{
			Brokers: brokers,
			Topic:   topic,
			GroupID: groupID,
		}),
		handler: handler,
		logger:  logger.With("component", "basket_confirmed_consumer"),
	}
}

// Start runs the consume loop in a goroutine until ctx is cancelled.
func (c *BasketConfirmedConsumer) Start(ctx context.Context) {
	c.logger.InfoContext(ctx, "Basket confirmed consumer started")

	go func() {
		for {
			msg, err := c.reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					c.logger.InfoContext(ctx, "Basket confirmed consumer stopped")
					return
				}
				c.logger.ErrorContext(ctx, "Failed to read message", "error", err)
				continue
			}

			c.consume(ctx, msg)
		}
	}()
}

// Close releases the underlying reader connection.
func (c *BasketConfirmedConsumer) Close() error {
	return c.reader.Close()
}

func (c *BasketConfirmedConsumer) consume(ctx context.Context, msg kafkago.Message) {
	var event basketConfirmedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		c.logger.ErrorContext(ctx, "Failed to decode message",
			"offset", msg.Offset, "error", err)
		return
	}

	orderID, err := kernel.UUIDFromString(event.BasketID)
	if err != nil {
		c.logger.ErrorContext(ctx, "Invalid basket id",
			"basketId", event.BasketID, "error", err)
		return
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, event.Street)
	if err != nil {
		c.logger.ErrorContext(ctx, "Invalid basket event",
			"basketId", event.BasketID, "error", err)
		return
	}

	if err = c.handler.Handle(ctx, cmd); err != nil {
		c.logger.ErrorContext(ctx, "Failed to create order",
			"orderId", orderID, "error", err)
	}
}
