package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetUsersByIDsQueryIsNotConstructed = errors.New(
	"GetUsersByIDsQuery must be created via NewGetUsersByIDsQuery constructor",
)

// GetUsersByIDsQuery resolves weak references held by other services. IDs that
// match nothing are simply absent from the result.
type GetUsersByIDsQuery struct {
	ids   []kernel.UUID
	guard guard.ConstructorGuard
}

func NewGetUsersByIDsQuery(ids []kernel.UUID) (GetUsersByIDsQuery, error) {
	seen := make(map[kernel.UUID]struct{}, len(ids))
	unique := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return GetUsersByIDsQuery{}, err
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	return GetUsersByIDsQuery{ids: unique, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUsersByIDsQuery) Validate() error {
	return q.guard.Validate(ErrGetUsersByIDsQueryIsNotConstructed)
}

// IDs returns the de-duplicated identifiers.
func (q GetUsersByIDsQuery) IDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(q.ids))
	copy(ids, q.ids)
	return ids
}
