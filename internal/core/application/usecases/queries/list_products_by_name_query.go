package queries

import (
	"errors"
	"strings"

	"fooddelivery/internal/pkg/guard"
)

var ErrListProductsByNameQueryIsNotConstructed = errors.New(
	"ListProductsByNameQuery must be created via NewListProductsByNameQuery constructor",
)

// ListProductsByNameQuery looks a product up by exact name within one merchant.
type ListProductsByNameQuery struct {
	merchantID string
	name       string
	guard      guard.ConstructorGuard
}

func NewListProductsByNameQuery(merchantID string, name string) ListProductsByNameQuery {
	return ListProductsByNameQuery{
		merchantID: strings.TrimSpace(merchantID),
		name:       strings.TrimSpace(name),
		guard:      guard.NewConstructorGuard(),
	}
}

func (q ListProductsByNameQuery) Validate() error {
	return q.guard.Validate(ErrListProductsByNameQueryIsNotConstructed)
}

func (q ListProductsByNameQuery) MerchantID() string {
	return q.merchantID
}

func (q ListProductsByNameQuery) Name() string {
	return q.name
}
