// Package outbox defines the message persisted alongside aggregate changes
// and later relayed to the message bus.
//
// A domain event becomes an outbox Message inside the same database
// transaction that stores the aggregate raising it. The relay job reads
// unhandled messages in occurrence order, publishes them and marks them
// handled, giving at-least-once delivery to the bus.
package outbox

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"dispatch/internal/pkg/ddd"
)

// Message is one stored domain event awaiting (or finished with) relay.
type Message struct {
	// ID is the event id, reused as the idempotency key on the bus.
	ID uuid.UUID
	// EventType is the event's stable name, e.g. "OrderAssigned".
	EventType string
	// Payload is the JSON-encoded event.
	Payload []byte
	// OccurredAtUtc orders messages for relay.
	OccurredAtUtc time.Time
	// HandledAtUtc is nil until the message has been published.
	HandledAtUtc *time.Time
}

// NewMessage encodes a domain event into a relayable message.
//
// Returns:
//   - Message: the encoded message keyed by the event id
//   - error: JSON encoding failure
func NewMessage(event ddd.DomainEvent) (Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return Message{}, err
	}

	return Message{
		ID:            event.EventID(),
		EventType:     event.EventName(),
		Payload:       payload,
		OccurredAtUtc: event.OccurredAtUtc(),
	}, nil
}

// MarkHandled stamps the message as published at now.
func (m *Message) MarkHandled(now time.Time) {
	utc := now.UTC()
	m.HandledAtUtc = &utc
}

// IsHandled reports whether the message has already been published.
func (m *Message) IsHandled() bool {
	return m.HandledAtUtc != nil
}
