package order_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItem(t *testing.T) {
	productID := kernel.NewUUID()

	t.Run("valid", func(t *testing.T) {
		item, err := order.NewLineItem(productID, "  Bun ", decimal.RequireFromString("2.50"), "sesame", 4)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.ProductID().IsEqual(productID))
		assert.Equal(t, "Bun", item.Name())
		assert.Equal(t, "sesame", item.Description())
		assert.Equal(t, 4, item.Quantity())
		assert.True(t, item.Amount().Equal(decimal.NewFromInt(10)))
	})

	t.Run("zero_quantity_means_one", func(t *testing.T) {
		item, err := order.NewLineItem(productID, "Bun", decimal.NewFromInt(5), "", 0)

		require.NoError(t, err)
		assert.Equal(t, 1, item.Quantity())
		assert.True(t, item.Amount().Equal(decimal.NewFromInt(5)))
	})

	t.Run("free_item_allowed", func(t *testing.T) {
		item, err := order.NewLineItem(productID, "Napkin", decimal.Zero, "", 1)

		require.NoError(t, err)
		assert.True(t, item.Amount().IsZero())
	})

	t.Run("invalid_fields_are_joined", func(t *testing.T) {
		_, err := order.NewLineItem(kernel.UUID{}, " ", decimal.NewFromInt(-1), "", -2)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "line item name")
		assert.Contains(t, err.Error(), "line item price")
		assert.Contains(t, err.Error(), "-2 is not greater than 0")
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var item order.LineItem
		assert.Equal(t, order.ErrLineItemIsNotConstructed, item.Validate())
	})
}
