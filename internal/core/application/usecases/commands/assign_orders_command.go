package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrAssignOrdersCommandIsNotConstructed = errors.New(
	"AssignOrdersCommand must be created via NewAssignOrdersCommand constructor",
)

// AssignOrdersCommand triggers one dispatch tick: the oldest Created order is
// matched with the fastest Free courier. Parameterless; the scheduler fires it
// periodically.
type AssignOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignOrdersCommand creates the command.
func NewAssignOrdersCommand() AssignOrdersCommand {
	return AssignOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *AssignOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrdersCommandIsNotConstructed)
}
