package queries

import (
	"errors"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetOrdersByUserQueryIsNotConstructed = errors.New(
	"GetOrdersByUserQuery must be created via NewGetOrdersByUserQuery constructor",
)

// GetOrdersByUserQuery lists the orders the caller takes part in: placed as a
// customer, received as a merchant or carried as a rider.
type GetOrdersByUserQuery struct {
	token string
	guard guard.ConstructorGuard
}

func NewGetOrdersByUserQuery(token string) (GetOrdersByUserQuery, error) {
	if token == "" {
		return GetOrdersByUserQuery{}, errs.NewValueIsRequiredError("userToken")
	}

	return GetOrdersByUserQuery{token: token, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrdersByUserQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByUserQueryIsNotConstructed)
}

func (q GetOrdersByUserQuery) Token() string {
	return q.token
}
