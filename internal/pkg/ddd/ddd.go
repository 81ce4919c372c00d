// Package ddd provides the domain event plumbing shared by aggregates.
//
// Aggregates record events into an in-memory buffer as state changes happen;
// the unit of work drains the buffer into the outbox inside the same database
// transaction that persists the aggregate.
package ddd

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is implemented by every event an aggregate can raise.
type DomainEvent interface {
	// EventID uniquely identifies this occurrence and doubles as the
	// idempotency key for downstream consumers.
	EventID() uuid.UUID
	// EventName is the stable type name stored in the outbox, e.g. "OrderAssigned".
	EventName() string
	// OccurredAtUtc is the UTC timestamp of the state change.
	OccurredAtUtc() time.Time
}

// EventPublisher is implemented by aggregates that buffer domain events.
// The unit of work uses it to drain events at commit time.
type EventPublisher interface {
	GetDomainEvents() []DomainEvent
	ClearDomainEvents()
}

// BaseAggregate carries the event buffer. Embed it in aggregate roots.
type BaseAggregate struct {
	domainEvents []DomainEvent
}

// RaiseDomainEvent appends an event to the buffer. Events stay buffered until
// the unit of work commits and clears them.
func (a *BaseAggregate) RaiseDomainEvent(event DomainEvent) {
	a.domainEvents = append(a.domainEvents, event)
}

// GetDomainEvents returns buffered events in the order they were raised.
func (a *BaseAggregate) GetDomainEvents() []DomainEvent {
	return a.domainEvents
}

// ClearDomainEvents empties the buffer after the events have been persisted.
func (a *BaseAggregate) ClearDomainEvents() {
	a.domainEvents = nil
}
