package user_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hash = "$2a$10$abcdefghijklmnopqrstuv"

func TestNewUser(t *testing.T) {
	shop, err := kernel.NewAddress("5 Market St")
	require.NoError(t, err)

	t.Run("rider_starts_off_duty", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), " bob ", "555-0100", user.Rider, nil, hash, time.Now())

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Equal(t, "bob", u.Name())
		assert.Equal(t, user.Rider, u.Role())
		require.NotNil(t, u.Availability())
		assert.Equal(t, user.OffDuty, *u.Availability())
		assert.Nil(t, u.Address())
		assert.False(t, u.IsIdleRider())
	})

	t.Run("merchant_keeps_address_and_has_no_availability", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "bakery", "555-0101", user.Merchant, &shop, hash, time.Now())

		require.NoError(t, err)
		require.NotNil(t, u.Address())
		assert.Equal(t, "5 Market St", u.Address().String())
		assert.Nil(t, u.Availability())
	})

	t.Run("merchant_without_address", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "bakery", "555-0101", user.Merchant, nil, hash, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "merchant address")
	})

	t.Run("customer_address_is_optional", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "alice", "555-0102", user.Customer, nil, hash, time.Now())

		require.NoError(t, err)
		assert.Nil(t, u.Address())
		assert.Nil(t, u.Availability())
	})

	t.Run("joins_field_errors", func(t *testing.T) {
		_, err := user.NewUser(kernel.UUID{}, "", " ", user.Role("admin"), nil, "", time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "contact number")
		assert.Contains(t, err.Error(), `"admin" is not a valid role`)
		assert.Contains(t, err.Error(), "password hash")
	})
}

func TestUser_SetAvailability(t *testing.T) {
	rider, err := user.NewUser(kernel.NewUUID(), "bob", "555-0100", user.Rider, nil, hash, time.Now())
	require.NoError(t, err)

	for _, a := range []user.Availability{user.Idle, user.Delivering, user.OffDuty, user.Idle} {
		require.NoError(t, rider.SetAvailability(a))
		assert.Equal(t, a, *rider.Availability())
	}
	assert.True(t, rider.IsIdleRider())

	require.ErrorIs(t, rider.SetAvailability("sleeping"), errs.ErrValueIsInvalid)
	assert.Equal(t, user.Idle, *rider.Availability())

	customer, err := user.NewUser(kernel.NewUUID(), "alice", "555-0102", user.Customer, nil, hash, time.Now())
	require.NoError(t, err)
	require.ErrorIs(t, customer.SetAvailability(user.Idle), user.ErrNotARider)
	assert.Nil(t, customer.Availability())
}

func TestRestoreUser(t *testing.T) {
	idle := user.Idle
	id := kernel.NewUUID()

	u, err := user.RestoreUser(id, "bob", "555-0100", user.Rider, nil, &idle, hash, time.UnixMilli(1))
	require.NoError(t, err)
	assert.True(t, u.ID().IsEqual(id))
	assert.True(t, u.IsIdleRider())
	assert.Equal(t, time.UnixMilli(1), u.CreatedAt())

	_, err = user.RestoreUser(kernel.NewUUID(), "alice", "555", user.Customer, nil, &idle, hash, time.Now())
	require.ErrorIs(t, err, user.ErrNotARider)
}

func TestParseRoleAndAvailability(t *testing.T) {
	r, err := user.ParseRole("merchant")
	require.NoError(t, err)
	assert.Equal(t, user.Merchant, r)

	_, err = user.ParseRole("Merchant")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	a, err := user.ParseAvailability("offDuty")
	require.NoError(t, err)
	assert.Equal(t, user.OffDuty, a)

	_, err = user.ParseAvailability("")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
