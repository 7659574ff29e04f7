package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand carries a sign-up request for a customer, merchant or rider.
//
// Example:
//
//	addr, _ := kernel.NewAddress("1 Market Sq")
//	cmd, err := NewRegisterUserCommand("bakery", "555-0101", "s3cret", user.Merchant, &addr)
//	if err != nil {
//	    return err
//	}
//	token, err := handler.Handle(ctx, cmd)
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	name     string
	contact  string
	password string
	role     user.Role
	address  *kernel.Address

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand validates the sign-up fields. Whether an address is
// required depends on the role and is checked by the user aggregate.
func NewRegisterUserCommand(
	name string,
	contact string,
	password string,
	role user.Role,
	address *kernel.Address,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setContact(contact),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Name() string {
	return c.name
}

func (c RegisterUserCommand) Contact() string {
	return c.contact
}

func (c RegisterUserCommand) Password() string {
	return c.password
}

func (c RegisterUserCommand) Role() user.Role {
	return c.role
}

// Address returns the registered address, nil when none was given.
func (c RegisterUserCommand) Address() *kernel.Address {
	return c.address
}

func (c *RegisterUserCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *RegisterUserCommand) setContact(contact string) error {
	contact = strings.TrimSpace(contact)
	if contact == "" {
		return errs.NewValueIsRequiredError("contactNumber")
	}

	c.contact = contact
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
