package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrStreetIsRequired = errors.New("street is required")
)

// CreateOrderCommand registers a new delivery order. The order id comes from
// the upstream system (the confirmed basket id), which makes retries of the
// same command idempotent.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(basketID, "Baker Street")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	street  string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates the command, requiring a valid order id and a
// non-empty street.
func NewCreateOrderCommand(orderID kernel.UUID, street string) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setStreet(street),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the order will be stored under.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Street returns the delivery street to resolve into a grid location.
func (c CreateOrderCommand) Street() string {
	return c.street
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setStreet(street string) error {
	if street == "" {
		return ErrStreetIsRequired
	}

	c.street = street
	return nil
}
