package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const productColumns = `id, merchant_id, name, price, description`

type ListProductsByMerchantQueryHandler struct {
	db *gorm.DB
}

func NewListProductsByMerchantQueryHandler(db *gorm.DB) ListProductsByMerchantQueryHandler {
	return ListProductsByMerchantQueryHandler{db: db}
}

// Handle returns the merchant's products ordered by name. The result is empty,
// never nil, including for an unknown or malformed merchant ID.
func (h ListProductsByMerchantQueryHandler) Handle(
	ctx context.Context,
	query ListProductsByMerchantQuery,
) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	merchantID, err := uuid.Parse(query.MerchantID())
	if err != nil {
		return []ProductView{}, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+productColumns+`
		FROM products
		WHERE merchant_id = ?
		ORDER BY name
	`, merchantID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collect(rows, scanProduct)
}
