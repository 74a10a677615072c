package commands

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var ErrDispatchOrdersCommandIsNotConstructed = errors.New(
	"DispatchOrdersCommand must be created via NewDispatchOrdersCommand constructor",
)

// DispatchOrdersCommand represents a request to match the oldest unassigned
// pending order with an available courier. Carries no parameters; the
// background job issues it on a schedule.
type DispatchOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchOrdersCommand creates a dispatch command.
func NewDispatchOrdersCommand() DispatchOrdersCommand {
	return DispatchOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchOrdersCommandIsNotConstructed if validation fails.
func (c DispatchOrdersCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOrdersCommandIsNotConstructed)
}
