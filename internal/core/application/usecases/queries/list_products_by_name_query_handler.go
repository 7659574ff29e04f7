package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListProductsByNameQueryHandler struct {
	db *gorm.DB
}

func NewListProductsByNameQueryHandler(db *gorm.DB) ListProductsByNameQueryHandler {
	return ListProductsByNameQueryHandler{db: db}
}

// Handle returns the matching products, or nil when nothing matches. Callers
// on the wire distinguish the null from an empty list.
func (h ListProductsByNameQueryHandler) Handle(ctx context.Context, query ListProductsByNameQuery) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	merchantID, err := uuid.Parse(query.MerchantID())
	if err != nil || query.Name() == "" {
		return nil, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+productColumns+`
		FROM products
		WHERE merchant_id = ? AND name = ?
		ORDER BY id
	`, merchantID, query.Name()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products, err := collect(rows, scanProduct)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, nil
	}

	return products, nil
}
