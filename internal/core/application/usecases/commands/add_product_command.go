package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAddProductCommandIsNotConstructed = errors.New(
	"AddProductCommand must be created via NewAddProductCommand constructor",
)

// AddProductCommand publishes a product in the calling merchant's catalog.
//
// Example:
//
//	cmd, err := NewAddProductCommand(token, "Bun", decimal.RequireFromString("2.50"), "sesame")
//	productID, err := handler.Handle(ctx, cmd)
type AddProductCommand struct { //nolint:recvcheck //using for validation
	token       string
	name        string
	price       decimal.Decimal
	description string

	guard guard.ConstructorGuard
}

func NewAddProductCommand(
	token string,
	name string,
	price decimal.Decimal,
	description string,
) (AddProductCommand, error) {
	cmd := AddProductCommand{
		description: strings.TrimSpace(description),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setToken(token),
		cmd.setName(name),
		cmd.setPrice(price),
	); err != nil {
		return AddProductCommand{}, err
	}

	return cmd, nil
}

func (c AddProductCommand) Validate() error {
	return c.guard.Validate(ErrAddProductCommandIsNotConstructed)
}

func (c AddProductCommand) Token() string {
	return c.token
}

func (c AddProductCommand) Name() string {
	return c.name
}

func (c AddProductCommand) Price() decimal.Decimal {
	return c.price
}

func (c AddProductCommand) Description() string {
	return c.description
}

func (c *AddProductCommand) setToken(token string) error {
	if token == "" {
		return errs.NewValueIsRequiredError("merchantToken")
	}

	c.token = token
	return nil
}

func (c *AddProductCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *AddProductCommand) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsOutOfRangeError("price", price, 0, "unbounded")
	}

	c.price = price
	return nil
}
