package commands

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired    = errors.New("order must contain at least one item")
	ErrItemMerchantIsWrong = errors.New("item belongs to another merchant")
)

// OrderItem is a product line as the customer submits it. MerchantID may be
// left empty; when set it must match the order's merchant.
type OrderItem struct {
	ProductID   kernel.UUID
	MerchantID  *kernel.UUID
	Name        string
	Price       decimal.Decimal
	Description string
	Quantity    int
}

// CreateOrderCommand represents a customer placing an order with one merchant.
// The submitted items are snapshotted into line items at construction.
//
// Example:
//
//	dest, _ := kernel.NewAddress("12 Elm St")
//	cmd, err := NewCreateOrderCommand(token, merchantID, []OrderItem{
//	    {ProductID: bunID, Name: "Bun", Price: decimal.NewFromInt(2), Quantity: 3},
//	}, dest)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	token       string
	merchantID  kernel.UUID
	items       []order.LineItem
	destination kernel.Address

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates every field and converts the items into
// line-item snapshots. All field errors are reported together.
func NewCreateOrderCommand(
	token string,
	merchantID kernel.UUID,
	items []OrderItem,
	destination kernel.Address,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setToken(token),
		cmd.setMerchantID(merchantID),
		cmd.setDestination(destination),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	if err := cmd.setItems(items); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Token returns the customer's session token.
func (c CreateOrderCommand) Token() string {
	return c.token
}

// MerchantID returns the merchant the order is placed with.
func (c CreateOrderCommand) MerchantID() kernel.UUID {
	return c.merchantID
}

// Items returns a copy of the line-item snapshots.
func (c CreateOrderCommand) Items() []order.LineItem {
	items := make([]order.LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// Destination returns the delivery address.
func (c CreateOrderCommand) Destination() kernel.Address {
	return c.destination
}

func (c *CreateOrderCommand) setToken(token string) error {
	if token == "" {
		return errs.NewValueIsRequiredError("customerToken")
	}

	c.token = token
	return nil
}

func (c *CreateOrderCommand) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}

	c.merchantID = merchantID
	return nil
}

func (c *CreateOrderCommand) setDestination(destination kernel.Address) error {
	if err := destination.Validate(); err != nil {
		return err
	}

	c.destination = destination
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("productList", ErrItemsAreRequired)
	}

	lineItems := make([]order.LineItem, 0, len(items))
	for i, item := range items {
		if item.MerchantID != nil && !item.MerchantID.IsEqual(c.merchantID) {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("productList[%d].merchantID", i), ErrItemMerchantIsWrong)
		}

		li, err := order.NewLineItem(item.ProductID, item.Name, item.Price, item.Description, item.Quantity)
		if err != nil {
			return fmt.Errorf("productList[%d]: %w", i, err)
		}
		lineItems = append(lineItems, li)
	}

	c.items = lineItems
	return nil
}
