package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateCourierCommandIsNotConstructed = errors.New(
		"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
	)
	ErrNameIsRequired          = errors.New("name is required")
	ErrTransportNameIsRequired = errors.New("transport name is required")
)

// CreateCourierCommand registers a new courier. The transport is chosen by
// its catalog name ("pedestrian", "bicycle", "car"); the starting location is
// picked by the handler.
//
// Example:
//
//	cmd, err := NewCreateCourierCommand("Alice", "bicycle")
//	if err != nil {
//	    return fmt.Errorf("invalid courier data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create courier: %w", err)
//	}
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID     kernel.UUID
	name          string
	transportName string

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand creates the command, generating a fresh courier id.
// The transport name is only checked for presence here; catalog membership is
// enforced by the handler.
func NewCreateCourierCommand(name string, transportName string) (CreateCourierCommand, error) {
	command := CreateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(kernel.NewUUID()),
		command.setName(name),
		command.setTransportName(transportName),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

// CourierID returns the generated courier id.
func (c CreateCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Name returns the courier name.
func (c CreateCourierCommand) Name() string {
	return c.name
}

// TransportName returns the requested catalog transport name.
func (c CreateCourierCommand) TransportName() string {
	return c.transportName
}

func (c *CreateCourierCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}

func (c *CreateCourierCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCourierCommand) setTransportName(transportName string) error {
	if transportName == "" {
		return ErrTransportNameIsRequired
	}

	c.transportName = transportName
	return nil
}
