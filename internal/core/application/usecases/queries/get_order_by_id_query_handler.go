package queries

import (
	"context"

	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle returns the order or errs.ErrObjectNotFound.
func (h GetOrderByIDQueryHandler) Handle(ctx context.Context, query GetOrderByIDQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderView{}, err
	}
	defer rows.Close()

	orders, err := collect(rows, scanOrder)
	if err != nil {
		return OrderView{}, err
	}
	if len(orders) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	return orders[0], nil
}
