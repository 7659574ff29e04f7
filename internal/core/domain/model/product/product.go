// Package product holds the catalog service's Product aggregate.
package product

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrNameIsRequired          = errs.NewValueIsRequiredError("product name")
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product is an item a merchant sells. Within one merchant the name is unique;
// the catalog store enforces that.
type Product struct {
	id          kernel.UUID
	merchantID  kernel.UUID
	name        string
	price       decimal.Decimal
	description string
	guard       guard.ConstructorGuard
}

// NewProduct validates and builds a Product. Price must not be negative.
func NewProduct(
	id kernel.UUID,
	merchantID kernel.UUID,
	name string,
	price decimal.Decimal,
	description string,
) (*Product, error) {
	p := &Product{
		description: strings.TrimSpace(description),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setMerchantID(merchantID),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Merchant() kernel.UUID {
	return p.merchantID
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Price() decimal.Decimal {
	return p.price
}

func (p *Product) Description() string {
	return p.description
}

// IsOwnedBy reports whether merchantID owns the product.
func (p *Product) IsOwnedBy(merchantID kernel.UUID) bool {
	return p.merchantID.IsEqual(merchantID)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setMerchantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("merchant", err)
	}
	p.merchantID = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	p.price = price
	return nil
}
