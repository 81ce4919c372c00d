package ports

import (
	"context"

	"dispatch/internal/core/domain/model/outbox"
)

// OutboxRepository reads and settles stored messages for the relay job.
// Writing messages is not part of this port: rows are inserted by the unit of
// work while committing aggregate changes.
type OutboxRepository interface {
	// GetUnhandled retrieves up to limit unpublished messages ordered by
	// occurrence time, ties broken by id.
	GetUnhandled(ctx context.Context, limit int) ([]outbox.Message, error)

	// MarkHandled persists the message's handled timestamp after a
	// successful publish.
	MarkHandled(ctx context.Context, message outbox.Message) error
}
