package outboxrepo

import (
	"context"

	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/outbox"
	"dispatch/internal/pkg/errs"
)

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add stores a batch of messages. Called by the unit of work inside the
// transaction that commits the aggregates which raised the events.
func (r *GormOutboxRepository) Add(ctx context.Context, messages []outbox.Message) error {
	if len(messages) == 0 {
		return nil
	}

	dtos := make([]MessageDTO, 0, len(messages))
	for _, message := range messages {
		dtos = append(dtos, fromDomain(message))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// GetUnhandled retrieves up to limit unpublished messages in occurrence order,
// ties broken by id.
func (r *GormOutboxRepository) GetUnhandled(ctx context.Context, limit int) ([]outbox.Message, error) {
	var dtos []MessageDTO
	if err := r.db.WithContext(ctx).
		Where("handled_at_utc IS NULL").
		Order("occurred_at_utc, id").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	messages := make([]outbox.Message, 0, len(dtos))
	for _, dto := range dtos {
		messages = append(messages, toDomain(dto))
	}

	return messages, nil
}

// MarkHandled persists the message's handled timestamp.
func (r *GormOutboxRepository) MarkHandled(ctx context.Context, message outbox.Message) error {
	result := r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id = ?", message.ID).
		Update("handled_at_utc", message.HandledAtUtc)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outbox message", message.ID.String())
	}

	return nil
}
