package queries

import (
	"context"
	"fmt"

	"fooddelivery/internal/core/ports"

	"gorm.io/gorm"
)

// GetUserByTokenQueryHandler verifies the token signature and expiry, then
// loads the current state of the account. A token for a deleted account is
// reported as ports.ErrInvalidToken.
type GetUserByTokenQueryHandler struct {
	db     *gorm.DB
	issuer ports.TokenIssuer
}

func NewGetUserByTokenQueryHandler(db *gorm.DB, issuer ports.TokenIssuer) GetUserByTokenQueryHandler {
	return GetUserByTokenQueryHandler{db: db, issuer: issuer}
}

func (h GetUserByTokenQueryHandler) Handle(ctx context.Context, query GetUserByTokenQuery) (UserView, error) {
	if err := query.Validate(); err != nil {
		return UserView{}, err
	}

	principal, err := h.issuer.Verify(query.Token())
	if err != nil {
		return UserView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+userColumns+`
		FROM users
		WHERE id = ?
	`, principal.UserID.Bytes()).Rows()
	if err != nil {
		return UserView{}, err
	}
	defer rows.Close()

	users, err := collect(rows, scanUser)
	if err != nil {
		return UserView{}, err
	}
	if len(users) == 0 {
		return UserView{}, fmt.Errorf("%w: user %s no longer exists", ports.ErrInvalidToken, principal.UserID)
	}

	return users[0], nil
}
