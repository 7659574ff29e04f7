// Package orderrepo persists order aggregates. Line items are stored as a JSON
// snapshot next to the order row.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders table row. Version drives optimistic concurrency.
type OrderDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	MerchantID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	RiderID     *uuid.UUID      `gorm:"type:uuid;index"`
	Items       []LineItemDTO   `gorm:"type:jsonb;serializer:json;not null"`
	Destination string          `gorm:"type:varchar(256);not null"`
	Status      int             `gorm:"type:smallint;not null;index"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CreatedAt   time.Time       `gorm:"not null;index"`
	Version     int             `gorm:"not null;default:0"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is one element of the items JSON column.
type LineItemDTO struct {
	ProductID   uuid.UUID       `json:"productID"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var riderID *uuid.UUID
	if id := aggregate.Rider(); id != nil {
		raw := id.Bytes()
		riderID = &raw
	}

	items := make([]LineItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, LineItemDTO{
			ProductID:   item.ProductID().Bytes(),
			Name:        item.Name(),
			Price:       item.Price(),
			Description: item.Description(),
			Quantity:    item.Quantity(),
		})
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		CustomerID:  aggregate.Customer().Bytes(),
		MerchantID:  aggregate.Merchant().Bytes(),
		RiderID:     riderID,
		Items:       items,
		Destination: aggregate.Destination().String(),
		Status:      int(aggregate.Status()),
		TotalAmount: aggregate.Total(),
		CreatedAt:   aggregate.CreatedAt(),
		Version:     aggregate.Version(),
	}
}

// ToDomain rebuilds an order aggregate from its row. It is shared with the
// order read queries.
func ToDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}

	var riderID *kernel.UUID
	if dto.RiderID != nil {
		rID, riderErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}
		riderID = &rID
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, idErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if idErr != nil {
			return nil, idErr
		}
		item, itemErr := order.NewLineItem(productID, itemDTO.Name, itemDTO.Price, itemDTO.Description, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	destination, err := kernel.NewAddress(dto.Destination)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, customerID, merchantID, riderID, items, destination,
		order.Status(dto.Status), dto.CreatedAt, dto.Version,
	)
}
