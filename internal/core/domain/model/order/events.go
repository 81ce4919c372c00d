package order

import (
	"time"

	"github.com/google/uuid"

	"dispatch/internal/core/domain/model/kernel"
)

// Event type names stored in the outbox and used as Kafka message headers.
const (
	OrderAssignedEventName  = "OrderAssigned"
	OrderCompletedEventName = "OrderCompleted"
)

// OrderAssigned is raised when a courier takes the order. Fields are exported
// so the event serializes to JSON as the outbox payload.
type OrderAssigned struct {
	ID         uuid.UUID `json:"eventId"`
	OccurredAt time.Time `json:"occurredAtUtc"`
	OrderID    uuid.UUID `json:"orderId"`
	CourierID  uuid.UUID `json:"courierId"`
}

// NewOrderAssigned records the assignment of orderID to courierID.
func NewOrderAssigned(orderID, courierID kernel.UUID) OrderAssigned {
	return OrderAssigned{
		ID:         uuid.New(),
		OccurredAt: time.Now().UTC(),
		OrderID:    orderID.Bytes(),
		CourierID:  courierID.Bytes(),
	}
}

// EventID implements ddd.DomainEvent.
func (e OrderAssigned) EventID() uuid.UUID { return e.ID }

// EventName implements ddd.DomainEvent.
func (e OrderAssigned) EventName() string { return OrderAssignedEventName }

// OccurredAtUtc implements ddd.DomainEvent.
func (e OrderAssigned) OccurredAtUtc() time.Time { return e.OccurredAt }

// OrderCompleted is raised when the courier arrives at the delivery location.
type OrderCompleted struct {
	ID         uuid.UUID `json:"eventId"`
	OccurredAt time.Time `json:"occurredAtUtc"`
	OrderID    uuid.UUID `json:"orderId"`
}

// NewOrderCompleted records the delivery of orderID.
func NewOrderCompleted(orderID kernel.UUID) OrderCompleted {
	return OrderCompleted{
		ID:         uuid.New(),
		OccurredAt: time.Now().UTC(),
		OrderID:    orderID.Bytes(),
	}
}

// EventID implements ddd.DomainEvent.
func (e OrderCompleted) EventID() uuid.UUID { return e.ID }

// EventName implements ddd.DomainEvent.
func (e OrderCompleted) EventName() string { return OrderCompletedEventName }

// OccurredAtUtc implements ddd.DomainEvent.
func (e OrderCompleted) OccurredAtUtc() time.Time { return e.OccurredAt }
