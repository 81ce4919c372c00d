// Package postgres provides the GORM-based unit of work tying aggregate
// persistence and the transactional outbox together.
//
// Repositories created through a unit of work run inside its transaction and
// report every added or updated aggregate back to it. On Commit the unit of
// work drains the domain events buffered in those aggregates into the outbox
// table before committing, so an aggregate change and the events it raised are
// stored atomically. The relay job publishes the stored events later.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Update(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"gorm.io/gorm"

	"dispatch/internal/adapters/out/postgres/courierrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/outboxrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/outbox"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/ddd"
)

// trackedAggregate is one aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates isolated UnitOfWork instances sharing one
// GORM connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to the given database.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh UnitOfWork with its own transaction state and
// aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork implements ports.UnitOfWork on a GORM transaction.
//
// Repositories obtained from it track the aggregates they persist; Commit
// collects the domain events those aggregates raised, stores them as outbox
// rows inside the same transaction and clears the buffers once the commit
// succeeds.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts a new database transaction. Calling Begin again on an active
// unit of work is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit stores the tracked aggregates' buffered events in the outbox and
// commits the transaction. Event buffers are cleared only after a successful
// commit, so a failed transaction leaves the aggregates ready for a retry.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	publishers := uow.collectPublishers()

	messages, err := buildMessages(publishers)
	if err != nil {
		return err
	}

	if err = outboxrepo.NewGormOutboxRepository(uow.tx).Add(ctx, messages); err != nil {
		return err
	}

	err = uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	for _, publisher := range publishers {
		publisher.ClearDomainEvents()
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]

	return nil
}

// Rollback rolls back the current transaction. After a successful Commit the
// transaction is gone and Rollback is a no-op, which makes it safe to defer.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// CourierRepository returns a courier repository bound to the current
// transaction, or to the bare connection when no transaction is active.
func (uow *GormUnitOfWork) CourierRepository() ports.CourierRepository {
	return courierrepo.NewGormCourierRepository(uow.conn(), uow)
}

// OrderRepository returns an order repository bound to the current
// transaction, or to the bare connection when no transaction is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate modified within this unit of work.
// Repositories call it on every Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// collectPublishers returns the distinct event-raising aggregates tracked so
// far. An aggregate saved twice in one transaction is drained once.
func (uow *GormUnitOfWork) collectPublishers() []ddd.EventPublisher {
	seen := make(map[any]struct{}, len(uow.trackedAggregates))
	publishers := make([]ddd.EventPublisher, 0, len(uow.trackedAggregates))

	for _, tracked := range uow.trackedAggregates {
		publisher, ok := tracked.Aggregate.(ddd.EventPublisher)
		if !ok {
			continue
		}
		if _, dup := seen[tracked.Aggregate]; dup {
			continue
		}
		seen[tracked.Aggregate] = struct{}{}
		publishers = append(publishers, publisher)
	}

	return publishers
}

func buildMessages(publishers []ddd.EventPublisher) ([]outbox.Message, error) {
	var messages []outbox.Message
	for _, publisher := range publishers {
		for _, event := range publisher.GetDomainEvents() {
			message, err := outbox.NewMessage(event)
			if err != nil {
				return nil, err
			}
			messages = append(messages, message)
		}
	}

	return messages, nil
}
