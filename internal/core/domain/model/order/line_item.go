package order

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrLineItemIsNotConstructed = errs.NewValueIsRequiredError(
	"line item must be created via NewLineItem constructor")

// LineItem is a snapshot of a catalog product taken when the order is created.
// Later catalog edits never reach it.
type LineItem struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	price       decimal.Decimal
	description string
	quantity    int
	guard       guard.ConstructorGuard
}

// NewLineItem validates a product snapshot. A zero quantity means one unit.
func NewLineItem(productID kernel.UUID, name string, price decimal.Decimal, description string, quantity int) (LineItem, error) {
	item := LineItem{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setName(name),
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

func (l LineItem) ProductID() kernel.UUID {
	return l.productID
}

func (l LineItem) Name() string {
	return l.name
}

func (l LineItem) Price() decimal.Decimal {
	return l.price
}

func (l LineItem) Description() string {
	return l.description
}

func (l LineItem) Quantity() int {
	return l.quantity
}

// Amount is price times quantity.
func (l LineItem) Amount() decimal.Decimal {
	return l.price.Mul(decimal.NewFromInt(int64(l.quantity)))
}

func (l LineItem) Validate() error {
	return l.guard.Validate(ErrLineItemIsNotConstructed)
}

func (l *LineItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	l.productID = productID
	return nil
}

func (l *LineItem) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("line item name")
	}
	l.name = name
	return nil
}

func (l *LineItem) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("line item price", fmt.Errorf("%s is negative", price))
	}
	l.price = price
	return nil
}

func (l *LineItem) setQuantity(quantity int) error {
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("line item quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}
