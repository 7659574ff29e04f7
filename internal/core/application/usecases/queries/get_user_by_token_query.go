package queries

import (
	"errors"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetUserByTokenQueryIsNotConstructed = errors.New(
	"GetUserByTokenQuery must be created via NewGetUserByTokenQuery constructor",
)

// GetUserByTokenQuery resolves a session token to the account behind it.
// Other services use it to authenticate their callers.
type GetUserByTokenQuery struct {
	token string
	guard guard.ConstructorGuard
}

func NewGetUserByTokenQuery(token string) (GetUserByTokenQuery, error) {
	if token == "" {
		return GetUserByTokenQuery{}, errs.NewValueIsRequiredError("userToken")
	}

	return GetUserByTokenQuery{token: token, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUserByTokenQuery) Validate() error {
	return q.guard.Validate(ErrGetUserByTokenQueryIsNotConstructed)
}

func (q GetUserByTokenQuery) Token() string {
	return q.token
}
