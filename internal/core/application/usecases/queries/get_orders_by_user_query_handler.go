package queries

import (
	"context"
	"fmt"

	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"

	"gorm.io/gorm"
)

type GetOrdersByUserQueryHandler struct {
	db       *gorm.DB
	identity ports.IdentityGateway
}

func NewGetOrdersByUserQueryHandler(db *gorm.DB, identity ports.IdentityGateway) GetOrdersByUserQueryHandler {
	return GetOrdersByUserQueryHandler{db: db, identity: identity}
}

// Handle authenticates the caller through the identity service and returns
// that user's orders, newest first. Never nil.
func (h GetOrdersByUserQueryHandler) Handle(ctx context.Context, query GetOrdersByUserQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	principal, err := h.identity.Authenticate(ctx, query.Token())
	if err != nil {
		return nil, err
	}

	column, err := partyColumn(principal.Role)
	if err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE `+column+` = ?
		ORDER BY created_at DESC, id
	`, principal.UserID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collect(rows, scanOrder)
}

func partyColumn(role user.Role) (string, error) {
	switch role {
	case user.Customer:
		return "customer_id", nil
	case user.Merchant:
		return "merchant_id", nil
	case user.Rider:
		return "rider_id", nil
	default:
		return "", fmt.Errorf("%w: role %q", ports.ErrForbidden, role)
	}
}
