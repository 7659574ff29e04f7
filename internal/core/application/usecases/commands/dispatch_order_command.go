package commands

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var ErrDispatchOrderCommandIsNotConstructed = errors.New(
	"DispatchOrderCommand must be created via NewDispatchOrderCommand constructor",
)

// DispatchOrderCommand triggers automatic assignment of a free rider to the
// oldest order that still has none.
//
// Example:
//
//	cmd := NewDispatchOrderCommand()
//	handler := NewDispatchOrderCommandHandler(uowFactory, identity)
//	res, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("No orders to assign or no available riders: %v", err)
//	}
type DispatchOrderCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchOrderCommand creates a parameterless dispatch trigger.
func NewDispatchOrderCommand() DispatchOrderCommand {
	return DispatchOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchOrderCommandIsNotConstructed if validation fails.
func (c *DispatchOrderCommand) Validate() error {
	return c.guard.Validate(
		ErrDispatchOrderCommandIsNotConstructed,
	)
}
