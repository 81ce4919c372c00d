package commands

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
)

// MoveCouriersCommandHandler runs one movement tick.
// Every order in Assigned status has its courier advanced one tick toward the
// delivery location; arrivals complete the order and free the courier. The
// whole tick is a single transaction: a missing courier row aborts it rather
// than silently skipping the order, and the OrderCompleted events land in the
// outbox together with the state changes.
type MoveCouriersCommandHandler struct {
	uowFactory UoWFactory
}

// NewMoveCouriersCommandHandler creates a handler for movement ticks.
func NewMoveCouriersCommandHandler(uowFactory UoWFactory) MoveCouriersCommandHandler {
	return MoveCouriersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle advances all deliveries in flight.
func (h MoveCouriersCommandHandler) Handle(ctx context.Context, cmd MoveCouriersCommand) error {
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

	orders, err := ordersRepo.GetAllInAssignedStatus(ctx)
	if err != nil {
		return err
	}

	for _, assignedOrder := range orders {
		assignedCourier, courierErr := courierRepo.Get(ctx, *assignedOrder.Courier())
		if courierErr != nil {
			return courierErr
		}

		if err = h.advance(assignedOrder, assignedCourier); err != nil {
			return err
		}

		if err = ordersRepo.Update(ctx, assignedOrder); err != nil {
			return err
		}

		if err = courierRepo.Update(ctx, assignedCourier); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// advance moves one courier a single tick and completes the order on arrival.
func (h MoveCouriersCommandHandler) advance(assignedOrder *order.Order, assignedCourier *courier.Courier) error {
	arrived, err := assignedCourier.Move()
	if err != nil {
		return err
	}

	if !arrived {
		return nil
	}

	return assignedOrder.Complete()
}
