package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository is the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstInCreatedStatus retrieves the oldest Created order: lowest
	// creation time, ties broken by id. One order is dispatched per
	// assignment tick.
	GetFirstInCreatedStatus(ctx context.Context) (*order.Order, error)

	// GetAllInAssignedStatus retrieves orders currently being delivered.
	GetAllInAssignedStatus(ctx context.Context) ([]*order.Order, error)
}
