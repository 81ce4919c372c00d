// Package commands contains the write operations of the dispatch service.
// Every handler follows the same shape: validate the command, begin a unit of
// work, mutate aggregates through repositories, commit. Handlers declare the
// narrowest unit-of-work interface they need.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

type (
	// TxManager handles the transaction lifecycle of a unit of work.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory exposes the order repository bound to the transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CourierRepoFactory exposes the courier repository bound to the transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// OrderUoW is the transaction boundary for order-only commands.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates order units of work.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CourierUoW is the transaction boundary for courier-only commands.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	// CourierUoWFactory creates courier units of work.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// UoW is the transaction boundary for commands that touch both aggregates,
	// such as a dispatch tick that flips an order to Assigned and a courier to
	// Busy atomically.
	UoW interface {
		TxManager
		CourierRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates cross-aggregate units of work.
	UoWFactory interface {
		Create() UoW
	}
)
