package kernel

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned for the all-zero identifier.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("identifier (zero UUID)")

// UUID identifies users, products and orders. Ids cross service boundaries as
// plain strings, so a UUID held by one service says nothing about whether the
// referenced entity still exists in another.
type UUID struct {
	id uuid.UUID
}

func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString accepts every textual form google/uuid parses, for example
// "550e8400-e29b-41d4-a716-446655440000" or the braced variant.
func UUIDFromString(s string) (UUID, error) {
	return wrapParsed(uuid.Parse(s))
}

// UUIDFromBytes reads the 16-byte column form. The zero UUID is rejected
// because no row is ever written with it.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := wrapParsed(uuid.FromBytes(b))
	if err != nil {
		return UUID{}, err
	}
	return id, id.Validate()
}

// OptionalUUIDFromString maps "" to nil, e.g. for an order without a rider.
func OptionalUUIDFromString(s string) (*UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := UUIDFromString(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func wrapParsed(id uuid.UUID, err error) (UUID, error) {
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

func (u UUID) String() string { return u.id.String() }

// Bytes exposes the google/uuid value for SQL arguments.
func (u UUID) Bytes() uuid.UUID { return u.id }

func (u UUID) IsEqual(other UUID) bool { return u.id == other.id }

func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
