// Package outboxrepo persists outbox messages with GORM. Rows are written by
// the unit of work in the same transaction as the aggregate changes that
// produced them; the relay job later reads and settles them.
package outboxrepo

import (
	"time"

	"github.com/google/uuid"

	"dispatch/internal/core/domain/model/outbox"
)

// MessageDTO is the database row for one stored domain event.
type MessageDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EventType     string     `gorm:"type:varchar(255);not null"`
	Payload       []byte     `gorm:"type:jsonb;not null"`
	OccurredAtUtc time.Time  `gorm:"not null;index"`
	HandledAtUtc  *time.Time `gorm:"index"`
}

// TableName maps the DTO onto the "outbox" table.
func (MessageDTO) TableName() string {
	return "outbox"
}

// fromDomain converts an outbox message to its database row.
func fromDomain(message outbox.Message) MessageDTO {
	return MessageDTO{
		ID:            message.ID,
		EventType:     message.EventType,
		Payload:       message.Payload,
		OccurredAtUtc: message.OccurredAtUtc,
		HandledAtUtc:  message.HandledAtUtc,
	}
}

// toDomain restores an outbox message from its database row.
func toDomain(dto MessageDTO) outbox.Message {
	return outbox.Message{
		ID:            dto.ID,
		EventType:     dto.EventType,
		Payload:       dto.Payload,
		OccurredAtUtc: dto.OccurredAtUtc,
		HandledAtUtc:  dto.HandledAtUtc,
	}
}
