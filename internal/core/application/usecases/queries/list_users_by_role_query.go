package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/guard"
)

var ErrListUsersByRoleQueryIsNotConstructed = errors.New(
	"ListUsersByRoleQuery must be created via NewListUsersByRoleQuery constructor",
)

// ListUsersByRoleQuery lists every account of one role, optionally narrowed to
// riders in a given availability.
//
// Example:
//
//	idle := user.Idle
//	query, _ := NewListUsersByRoleQuery(user.Rider, &idle)
//	riders, err := handler.Handle(ctx, query)
type ListUsersByRoleQuery struct {
	role         user.Role
	availability *user.Availability
	guard        guard.ConstructorGuard
}

func NewListUsersByRoleQuery(role user.Role, availability *user.Availability) (ListUsersByRoleQuery, error) {
	if err := role.Validate(); err != nil {
		return ListUsersByRoleQuery{}, err
	}
	if availability != nil {
		if err := availability.Validate(); err != nil {
			return ListUsersByRoleQuery{}, err
		}
	}

	return ListUsersByRoleQuery{
		role:         role,
		availability: availability,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q ListUsersByRoleQuery) Validate() error {
	return q.guard.Validate(ErrListUsersByRoleQueryIsNotConstructed)
}

func (q ListUsersByRoleQuery) Role() user.Role {
	return q.role
}

// Availability returns the availability filter, nil for none.
func (q ListUsersByRoleQuery) Availability() *user.Availability {
	return q.availability
}
