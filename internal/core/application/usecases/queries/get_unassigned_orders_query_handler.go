package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetUnassignedOrdersQueryHandler retrieves orders no rider has accepted yet.
// Assignability depends only on the rider being empty, whatever the status,
// except that completed orders are never offered.
//
// Example:
//
//	handler := NewGetUnassignedOrdersQueryHandler(db)
//	open, err := handler.Handle(ctx, NewGetUnassignedOrdersQuery())
//	if err != nil {
//	    return err
//	}
type GetUnassignedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnassignedOrdersQueryHandler creates a handler for open order queries.
func NewGetUnassignedOrdersQueryHandler(db *gorm.DB) GetUnassignedOrdersQueryHandler {
	return GetUnassignedOrdersQueryHandler{db: db}
}

// Handle returns open orders oldest first. Never nil.
func (h GetUnassignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnassignedOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE rider_id IS NULL AND status <> ?
		ORDER BY created_at, id
	`, int(order.Completed)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collect(rows, scanOrder)
}
