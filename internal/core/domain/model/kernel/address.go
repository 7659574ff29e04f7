package kernel

import (
	"strings"
	"unicode/utf8"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// AddressMaxLength bounds a free-text postal address, in runes.
const AddressMaxLength = 256

// ErrAddressIsNotConstructed is returned when a zero-value Address is used.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is a free-text postal address: a merchant's shop or an order's
// delivery destination. Surrounding whitespace is trimmed; the result must be
// non-empty and at most AddressMaxLength runes.
//
//	dest, err := kernel.NewAddress("123 Main St")
type Address struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewAddress validates and builds an Address.
func NewAddress(value string) (Address, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Address{}, errs.NewValueIsRequiredError("address")
	}
	if n := utf8.RuneCountInString(trimmed); n > AddressMaxLength {
		return Address{}, errs.NewValueIsOutOfRangeError("address length", n, 1, AddressMaxLength)
	}

	return Address{
		value: trimmed,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the normalised address text.
func (a Address) String() string {
	return a.value
}

// IsEqual compares two addresses by their normalised text.
func (a Address) IsEqual(other Address) bool {
	return a.value == other.value
}

// Validate rejects zero-value addresses.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}
