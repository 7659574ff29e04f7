package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrRemoveProductCommandIsNotConstructed = errors.New(
	"RemoveProductCommand must be created via NewRemoveProductCommand constructor",
)

// RemoveProductCommand withdraws a product, addressed by name, from the calling
// merchant's catalog. Orders already holding a snapshot of it are unaffected.
type RemoveProductCommand struct { //nolint:recvcheck //using for validation
	token string
	name  string

	guard guard.ConstructorGuard
}

func NewRemoveProductCommand(token string, name string) (RemoveProductCommand, error) {
	cmd := RemoveProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setToken(token),
		cmd.setName(name),
	); err != nil {
		return RemoveProductCommand{}, err
	}

	return cmd, nil
}

func (c RemoveProductCommand) Validate() error {
	return c.guard.Validate(ErrRemoveProductCommandIsNotConstructed)
}

func (c RemoveProductCommand) Token() string {
	return c.token
}

func (c RemoveProductCommand) Name() string {
	return c.name
}

func (c *RemoveProductCommand) setToken(token string) error {
	if token == "" {
		return errs.NewValueIsRequiredError("merchantToken")
	}

	c.token = token
	return nil
}

func (c *RemoveProductCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
