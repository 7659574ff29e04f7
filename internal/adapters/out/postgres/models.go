package postgres

import (
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/productrepo"
	"fooddelivery/internal/adapters/out/postgres/userrepo"
	"fooddelivery/internal/pkg/rpc"

	"gorm.io/gorm"
)

// Models returns the table models owned by service.
func Models(service rpc.Service) []any {
	switch service {
	case rpc.Identity:
		return []any{&userrepo.UserDTO{}}
	case rpc.Catalog:
		return []any{&productrepo.ProductDTO{}}
	case rpc.Order:
		return []any{&orderrepo.OrderDTO{}}
	default:
		return nil
	}
}

// Migrate creates or updates the tables of the given services.
func Migrate(db *gorm.DB, services ...rpc.Service) error {
	models := make([]any, 0, len(services))
	for _, service := range services {
		models = append(models, Models(service)...)
	}
	if len(models) == 0 {
		return nil
	}
	return db.AutoMigrate(models...)
}
