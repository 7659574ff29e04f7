package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	lookupFailed := errors.New("connection reset")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "not_found",
			err:  errs.NewObjectNotFoundError("orderID", "o-1"),
			want: "object not found: o-1",
		},
		{
			name: "not_found_with_cause",
			err:  errs.NewObjectNotFoundErrorWithCause("orderID", "o-1", lookupFailed),
			want: "object not found: param is: orderID, ID is: o-1 (cause: connection reset)",
		},
		{
			name: "not_found_with_numeric_id",
			err:  errs.NewObjectNotFoundError("page", 7),
			want: "object not found: %!s(int=7)",
		},
		{
			name: "invalid",
			err:  errs.NewValueIsInvalidError("merchantID"),
			want: "value is invalid: merchantID",
		},
		{
			name: "invalid_with_cause",
			err:  errs.NewValueIsInvalidErrorWithCause("merchantID", errors.New("not a uuid")),
			want: "value is invalid: merchantID (cause: not a uuid)",
		},
		{
			name: "out_of_range",
			err:  errs.NewValueIsOutOfRangeError("quantity", 0, 1, 99),
			want: "value is invalid: 0 is quantity, min value is 1, max value is 99",
		},
		{
			name: "out_of_range_with_cause",
			err:  errs.NewValueIsOutOfRangeErrorWithCause("price", -3, 0, "unbounded", errors.New("negative")),
			want: "value is invalid: -3 is price, min value is 0, max value is unbounded (cause: negative)",
		},
		{
			name: "required",
			err:  errs.NewValueIsRequiredError("destination"),
			want: "value is required: destination",
		},
		{
			name: "required_with_cause",
			err:  errs.NewValueIsRequiredErrorWithCause("productList", errors.New("empty")),
			want: "value is required: productList (cause: empty)",
		},
		{
			name: "version",
			err:  errs.NewVersionIsInvalidErrorWithCause("order"),
			want: "version is invalid: order",
		},
		{
			name: "version_with_cause",
			err:  errs.NewVersionIsInvalidError("order", errors.New("stored version 4, read 3")),
			want: "version is invalid: order (cause: stored version 4, read 3)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestOutOfRange_FlattensNewlines(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("address", "5 Market St\nBack door", 1, 256)

	assert.Contains(t, err.Error(), "5 Market St Back door")
	assert.NotContains(t, err.Error(), "\n")
}

func TestFields(t *testing.T) {
	cause := errors.New("boom")

	notFound := errs.NewObjectNotFoundErrorWithCause("productID", "p-9", cause)
	assert.Equal(t, "productID", notFound.ParamName)
	assert.Equal(t, "p-9", notFound.ID)
	assert.Equal(t, cause, notFound.Cause)

	outOfRange := errs.NewValueIsOutOfRangeError("price", -1, 0, 100)
	assert.Equal(t, -1, outOfRange.Value)
	assert.Equal(t, 0, outOfRange.Min)
	assert.Equal(t, 100, outOfRange.Max)
	require.NoError(t, outOfRange.Cause)
}

func TestSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{"not_found", errs.NewObjectNotFoundError("orderID", "o-1"), errs.ErrObjectNotFound, "object not found"},
		{"invalid", errs.NewValueIsInvalidError("role"), errs.ErrValueIsInvalid, "value is invalid"},
		{"out_of_range", errs.NewValueIsOutOfRangeError("price", -1, 0, 1), errs.ErrValueIsOutOfRange, "value is out of range"},
		{"required", errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired, "value is required"},
		{"version", errs.NewVersionIsInvalidErrorWithCause("order"), errs.ErrVersionIsInvalid, "version is invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.sentinel.Error())
			require.ErrorIs(t, tt.err, tt.sentinel)
			require.ErrorIs(t, fmt.Errorf("create order: %w", tt.err), tt.sentinel)
		})
	}
}

func TestJoinedSetterErrors(t *testing.T) {
	err := errors.Join(
		errs.NewValueIsRequiredError("name"),
		errs.NewValueIsOutOfRangeError("price", -1, 0, "unbounded"),
	)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.NotErrorIs(t, err, errs.ErrObjectNotFound)
}
