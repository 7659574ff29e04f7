package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrLoginUserCommandIsNotConstructed = errors.New(
	"LoginUserCommand must be created via NewLoginUserCommand constructor",
)

// LoginUserCommand exchanges a name and password for a session token.
type LoginUserCommand struct { //nolint:recvcheck //using for validation
	name     string
	password string

	guard guard.ConstructorGuard
}

func NewLoginUserCommand(name string, password string) (LoginUserCommand, error) {
	cmd := LoginUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setPassword(password),
	); err != nil {
		return LoginUserCommand{}, err
	}

	return cmd, nil
}

func (c LoginUserCommand) Validate() error {
	return c.guard.Validate(ErrLoginUserCommandIsNotConstructed)
}

func (c LoginUserCommand) Name() string {
	return c.name
}

func (c LoginUserCommand) Password() string {
	return c.password
}

func (c *LoginUserCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *LoginUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}
