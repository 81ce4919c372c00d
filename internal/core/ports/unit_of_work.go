package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command, keeping
// concurrent handlers isolated from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the business transaction boundary.
//
// Commit also drains the domain events of every tracked aggregate into the
// outbox within the same database transaction, so an aggregate change and its
// events are stored atomically.
//
// Ticks that read, decide and write (assign, move) REQUIRE serializable
// isolation to interleave safely. This deployment does not raise the
// database's default read-committed level; instead it never interleaves
// those transactions at all: each tick is single-flight within its job and
// the service runs as a single instance. Running multiple instances, or
// removing the single-flight scheduling, without serializable transactions
// breaks the Free/Busy and Created/Assigned invariants. The full argument
// is recorded in DESIGN.md.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit stores outbox rows for all tracked aggregates' buffered events,
	// commits the transaction and clears the buffers.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. Safe to defer after a
	// successful Commit; it becomes a no-op.
	Rollback(ctx context.Context) error

	// CourierRepository returns a repository bound to the current transaction.
	CourierRepository() CourierRepository

	// OrderRepository returns a repository bound to the current transaction.
	OrderRepository() OrderRepository
}
