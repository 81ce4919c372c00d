package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// CreateOrderCommandHandler creates orders from confirmed baskets.
// The street is resolved to a grid location through the geo client; a command
// whose order id already exists is acknowledged without changes, so redelivered
// basket events do not produce duplicates.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	geoClient  ports.GeoClient
}

// NewCreateOrderCommandHandler creates a handler for order intake.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, geoClient ports.GeoClient) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		geoClient:  geoClient,
	}
}

// Handle resolves the delivery location and stores a new Created order.
// Returns nil when the order already exists.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	location, err := h.geoClient.GetLocation(ctx, cmd.Street())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	_, err = orderRepo.Get(ctx, cmd.OrderID())
	if err == nil {
		// Already created by an earlier delivery of the same command.
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), location)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
