package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrSetRiderAvailabilityCommandIsNotConstructed = errors.New(
	"SetRiderAvailabilityCommand must be created via NewSetRiderAvailabilityCommand constructor",
)

// SetRiderAvailabilityCommand lets a signed-in rider go idle, busy or off duty.
type SetRiderAvailabilityCommand struct { //nolint:recvcheck //using for validation
	token        string
	availability user.Availability

	guard guard.ConstructorGuard
}

func NewSetRiderAvailabilityCommand(token string, availability user.Availability) (SetRiderAvailabilityCommand, error) {
	cmd := SetRiderAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setToken(token),
		cmd.setAvailability(availability),
	); err != nil {
		return SetRiderAvailabilityCommand{}, err
	}

	return cmd, nil
}

func (c SetRiderAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetRiderAvailabilityCommandIsNotConstructed)
}

func (c SetRiderAvailabilityCommand) Token() string {
	return c.token
}

func (c SetRiderAvailabilityCommand) Availability() user.Availability {
	return c.availability
}

func (c *SetRiderAvailabilityCommand) setToken(token string) error {
	if token == "" {
		return errs.NewValueIsRequiredError("userToken")
	}

	c.token = token
	return nil
}

func (c *SetRiderAvailabilityCommand) setAvailability(availability user.Availability) error {
	if err := availability.Validate(); err != nil {
		return err
	}

	c.availability = availability
	return nil
}
