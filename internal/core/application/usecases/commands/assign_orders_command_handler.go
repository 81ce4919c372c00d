package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

// Expected empty-tick outcomes. Callers treat them as quiet ticks, not failures.
var (
	ErrNoOrderFound        = errors.New("no order found")
	ErrNoFreeCouriersFound = errors.New("no free couriers found")
)

// AssignOrdersCommandHandler runs one dispatch tick.
// It takes the oldest Created order, asks the dispatcher to pick the fastest
// Free courier and persists both aggregate changes in one transaction; the
// OrderAssigned event reaches the outbox in that same transaction.
//
// Example:
//
//	handler := NewAssignOrdersCommandHandler(uowFactory)
//	cmd := NewAssignOrdersCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoOrderFound):
//	    // nothing to dispatch
//	case errors.Is(err, ErrNoFreeCouriersFound):
//	    // the whole fleet is busy
//	case err != nil:
//	    // real failure
//	}
type AssignOrdersCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignOrdersCommandHandler creates a handler for dispatch ticks.
func NewAssignOrdersCommandHandler(uowFactory UoWFactory) AssignOrdersCommandHandler {
	return AssignOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle dispatches at most one order.
// Returns ErrNoOrderFound when no Created order exists and
// ErrNoFreeCouriersFound when no courier can take it.
func (h AssignOrdersCommandHandler) Handle(ctx context.Context, cmd AssignOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	ordersRepo := uow.OrderRepository()

	pendingOrder, err := ordersRepo.GetFirstInCreatedStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderFound
	}
	if err != nil {
		return err
	}

	couriers, err := courierRepo.GetAllFree(ctx)
	if err != nil {
		return err
	}

	assignedCourier, err := services.NewOrderDispatcher().Dispatch(pendingOrder, couriers)
	if errors.Is(err, services.ErrNoCourierAvailable) {
		return ErrNoFreeCouriersFound
	}
	if err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, pendingOrder); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, assignedCourier); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
