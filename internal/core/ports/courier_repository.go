// Package ports defines the contracts between the application core and the
// adapters: repositories, the unit of work, the message bus and the geo
// resolver. Adapters implement them; use cases depend on them only.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
)

// CourierRepository is the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists changes to an existing courier, including its
	// status and current assignment.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier by id.
	// Returns errs.ObjectNotFoundError when no such courier exists.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAllFree retrieves couriers in Free status as the candidate set for
	// dispatch, ordered by name then id. The order must be stable across
	// calls: dispatch breaks ties by picking the first courier reaching the
	// minimum delivery time.
	GetAllFree(ctx context.Context) ([]*courier.Courier, error)

	// GetAllBusy retrieves couriers in Busy status for the movement tick.
	GetAllBusy(ctx context.Context) ([]*courier.Courier, error)
}
