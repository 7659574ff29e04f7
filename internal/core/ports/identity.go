package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/domain/services"
)

// Principal is the authenticated caller behind a user token.
type Principal struct {
	UserID kernel.UUID
	Role   user.Role
}

// IdentityGateway is how the catalog and order services reach the identity
// service. Only the caller's token is ever checked; stored references are not.
type IdentityGateway interface {
	// Authenticate resolves a user token, or returns ErrInvalidToken.
	Authenticate(ctx context.Context, token string) (Principal, error)

	// IdleRiders lists riders whose availability is idle.
	IdleRiders(ctx context.Context) ([]services.RiderCandidate, error)
}

// TokenIssuer signs and verifies user tokens inside the identity service.
type TokenIssuer interface {
	Issue(userID kernel.UUID, role user.Role) (string, error)
	Verify(token string) (Principal, error)
}

// PasswordHasher hashes and checks passwords; plain passwords are never stored.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}
