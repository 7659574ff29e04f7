package queries

import (
	"errors"
	"strings"

	"fooddelivery/internal/pkg/guard"
)

var ErrListProductsByMerchantQueryIsNotConstructed = errors.New(
	"ListProductsByMerchantQuery must be created via NewListProductsByMerchantQuery constructor",
)

// ListProductsByMerchantQuery lists a merchant's catalog. The merchant ID is
// kept as received; an ID that is not a UUID matches nothing.
type ListProductsByMerchantQuery struct {
	merchantID string
	guard      guard.ConstructorGuard
}

func NewListProductsByMerchantQuery(merchantID string) ListProductsByMerchantQuery {
	return ListProductsByMerchantQuery{
		merchantID: strings.TrimSpace(merchantID),
		guard:      guard.NewConstructorGuard(),
	}
}

func (q ListProductsByMerchantQuery) Validate() error {
	return q.guard.Validate(ErrListProductsByMerchantQueryIsNotConstructed)
}

func (q ListProductsByMerchantQuery) MerchantID() string {
	return q.merchantID
}
