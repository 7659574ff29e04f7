package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for identity-service accounts.
type UserRepository interface {
	// Add persists a new user. A taken name yields ErrAlreadyExists.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByName retrieves a user by its unique login name.
	GetByName(ctx context.Context, name string) (*user.User, error)
}
