package kernel_test

import (
	"strings"
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("should trim surrounding whitespace", func(t *testing.T) {
		addr, err := kernel.NewAddress("  123 Main St \n")

		require.NoError(t, err)
		assert.Equal(t, "123 Main St", addr.String())
		assert.NoError(t, addr.Validate())
	})

	t.Run("should reject blank address", func(t *testing.T) {
		_, err := kernel.NewAddress("   ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject overly long address", func(t *testing.T) {
		_, err := kernel.NewAddress(strings.Repeat("a", kernel.AddressMaxLength+1))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should count runes not bytes", func(t *testing.T) {
		_, err := kernel.NewAddress(strings.Repeat("路", kernel.AddressMaxLength))

		require.NoError(t, err)
	})

	t.Run("should compare by normalised text", func(t *testing.T) {
		a, _ := kernel.NewAddress("People's Square, Building B")
		b, _ := kernel.NewAddress(" People's Square, Building B ")

		assert.True(t, a.IsEqual(b))
	})
}

func TestAddress_Validate(t *testing.T) {
	var zero kernel.Address

	assert.ErrorIs(t, zero.Validate(), kernel.ErrAddressIsNotConstructed)
}
