// Package productrepo persists catalog products.
package productrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO is the products table row. (merchant_id, name) is unique.
type ProductDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MerchantID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_products_merchant_name"`
	Name        string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_products_merchant_name"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Description string          `gorm:"type:text;not null;default:''"`
	CreatedAt   time.Time       `gorm:"not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:          aggregate.ID().Bytes(),
		MerchantID:  aggregate.Merchant().Bytes(),
		Name:        aggregate.Name(),
		Price:       aggregate.Price(),
		Description: aggregate.Description(),
	}
}

// ToDomain rebuilds a product from its row.
func ToDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}

	return product.NewProduct(id, merchantID, dto.Name, dto.Price, dto.Description)
}
