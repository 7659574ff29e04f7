package order_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItems(t *testing.T) []order.LineItem {
	t.Helper()

	bun, err := order.NewLineItem(kernel.NewUUID(), "Bun", decimal.NewFromInt(5), "", 2)
	require.NoError(t, err)
	tea, err := order.NewLineItem(kernel.NewUUID(), "Tea", decimal.RequireFromString("1.25"), "green", 1)
	require.NoError(t, err)

	return []order.LineItem{bun, tea}
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()

	dest, err := kernel.NewAddress("123 Main St")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), newItems(t), dest, time.Now())
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	id := kernel.NewUUID()
	customerID := kernel.NewUUID()
	merchantID := kernel.NewUUID()
	dest, _ := kernel.NewAddress("123 Main St")
	createdAt := time.UnixMilli(1_700_000_000_000)

	t.Run("starts_awaiting_preparation_without_rider", func(t *testing.T) {
		o, err := order.NewOrder(id, customerID, merchantID, newItems(t), dest, createdAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.Customer().IsEqual(customerID))
		assert.True(t, o.Merchant().IsEqual(merchantID))
		assert.Nil(t, o.Rider())
		assert.Equal(t, order.AwaitingPreparation, o.Status())
		assert.Equal(t, "123 Main St", o.Destination().String())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, 0, o.Version())
		assert.Len(t, o.Items(), 2)
		assert.True(t, o.Total().Equal(decimal.RequireFromString("11.25")))
		assert.True(t, o.IsAssignable())
	})

	t.Run("requires_items", func(t *testing.T) {
		o, err := order.NewOrder(id, customerID, merchantID, nil, dest, createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "line items")
	})

	t.Run("joins_field_errors", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, kernel.UUID{}, merchantID, newItems(t), kernel.Address{}, createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.Contains(t, err.Error(), "customer")
		assert.Contains(t, err.Error(), "address must be created")
	})

	t.Run("rejects_unconstructed_item", func(t *testing.T) {
		_, err := order.NewOrder(id, customerID, merchantID, []order.LineItem{{}}, dest, createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "line item 0")
	})
}

func TestRestoreOrder(t *testing.T) {
	dest, _ := kernel.NewAddress("1 Elm St")
	rider := kernel.NewUUID()

	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), &rider,
		newItems(t), dest, order.Delivering, time.Now(), 3)

	require.NoError(t, err)
	assert.Equal(t, order.Delivering, o.Status())
	assert.Equal(t, 3, o.Version())
	require.NotNil(t, o.Rider())
	assert.True(t, o.IsRider(rider))
	assert.False(t, o.IsAssignable())

	_, err = order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
		newItems(t), dest, order.Unknown, time.Now(), 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, nilOrder.Validate())
	assert.Equal(t, order.ErrOrderIsNotConstructed, (&order.Order{}).Validate())
	require.NoError(t, newOrder(t).Validate())
}

func TestOrder_IsEqual(t *testing.T) {
	a := newOrder(t)
	b := newOrder(t)

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(nil))
}

func TestOrder_AssignRider(t *testing.T) {
	t.Run("first_acceptance_wins", func(t *testing.T) {
		o := newOrder(t)
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		require.NoError(t, o.AssignRider(first))
		err := o.AssignRider(second)

		require.ErrorIs(t, err, order.ErrRiderAlreadyAssigned)
		assert.True(t, o.IsRider(first))
		assert.False(t, o.IsRider(second))
		assert.Equal(t, order.AwaitingPreparation, o.Status())
		assert.False(t, o.IsAssignable())
	})

	t.Run("same_rider_twice_is_rejected", func(t *testing.T) {
		o := newOrder(t)
		rider := kernel.NewUUID()

		require.NoError(t, o.AssignRider(rider))
		require.ErrorIs(t, o.AssignRider(rider), order.ErrRiderAlreadyAssigned)
	})

	t.Run("completed_order_is_rejected", func(t *testing.T) {
		dest, _ := kernel.NewAddress("1 Elm St")
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
			newItems(t), dest, order.Completed, time.Now(), 1)
		require.NoError(t, err)

		require.ErrorIs(t, o.AssignRider(kernel.NewUUID()), order.ErrOrderIsCompleted)
		assert.Nil(t, o.Rider())
		assert.False(t, o.IsAssignable())
	})

	t.Run("invalid_rider", func(t *testing.T) {
		o := newOrder(t)
		require.ErrorIs(t, o.AssignRider(kernel.UUID{}), errs.ErrValueIsRequired)
		assert.Nil(t, o.Rider())
	})

	t.Run("rider_copy_is_detached", func(t *testing.T) {
		o := newOrder(t)
		rider := kernel.NewUUID()
		require.NoError(t, o.AssignRider(rider))

		got := o.Rider()
		*got = kernel.NewUUID()

		assert.True(t, o.IsRider(rider))
	})
}

func TestOrder_AdvanceStatus(t *testing.T) {
	t.Run("merchant_then_rider_lifecycle", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.AssignRider(kernel.NewUUID()))
		require.NoError(t, o.AdvanceStatus(order.Delivering))
		require.NoError(t, o.AdvanceStatus(order.Completed))
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("completed_cannot_be_advanced_again", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.AssignRider(kernel.NewUUID()))
		require.NoError(t, o.AdvanceStatus(order.Delivering))
		require.NoError(t, o.AdvanceStatus(order.Completed))

		for _, target := range []order.Status{
			order.AwaitingAssignment, order.AwaitingPreparation, order.Delivering, order.Completed,
		} {
			require.ErrorIs(t, o.AdvanceStatus(target), order.ErrStatusTransitionRejected)
			assert.Equal(t, order.Completed, o.Status())
		}
	})

	t.Run("delivering_needs_a_rider", func(t *testing.T) {
		o := newOrder(t)

		err := o.AdvanceStatus(order.Delivering)

		require.ErrorIs(t, err, order.ErrStatusTransitionRejected)
		assert.Contains(t, err.Error(), "needs an assigned rider")
		assert.Equal(t, order.AwaitingPreparation, o.Status())
		assert.Nil(t, o.Rider())
	})

	t.Run("completed_needs_a_rider", func(t *testing.T) {
		dest, _ := kernel.NewAddress("1 Elm St")
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
			newItems(t), dest, order.Delivering, time.Now(), 4)
		require.NoError(t, err)

		require.ErrorIs(t, o.AdvanceStatus(order.Completed), order.ErrStatusTransitionRejected)
		assert.Equal(t, order.Delivering, o.Status())
		assert.True(t, o.IsAssignable())
	})

	t.Run("skipping_is_rejected_without_mutation", func(t *testing.T) {
		o := newOrder(t)

		require.ErrorIs(t, o.AdvanceStatus(order.Completed), order.ErrStatusTransitionRejected)
		assert.Equal(t, order.AwaitingPreparation, o.Status())
	})

	t.Run("alternate_initial_state", func(t *testing.T) {
		dest, _ := kernel.NewAddress("1 Elm St")
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
			newItems(t), dest, order.AwaitingAssignment, time.Now(), 0)
		require.NoError(t, err)

		require.NoError(t, o.AdvanceStatus(order.AwaitingPreparation))
		assert.Equal(t, order.AwaitingPreparation, o.Status())
	})
}
