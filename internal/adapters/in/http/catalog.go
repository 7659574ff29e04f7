package http

import (
	"context"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/messages"

	"github.com/shopspring/decimal"
)

// CatalogHandlers serves the catalog-service message kinds.
type CatalogHandlers struct {
	addProduct    UseCase[commands.AddProductCommand, kernel.UUID]
	removeProduct Action[commands.RemoveProductCommand]

	productsByMerchant UseCase[queries.ListProductsByMerchantQuery, []queries.ProductView]
	productsByName     UseCase[queries.ListProductsByNameQuery, []queries.ProductView]
}

func NewCatalogHandlers(
	addProduct UseCase[commands.AddProductCommand, kernel.UUID],
	removeProduct Action[commands.RemoveProductCommand],
	productsByMerchant UseCase[queries.ListProductsByMerchantQuery, []queries.ProductView],
	productsByName UseCase[queries.ListProductsByNameQuery, []queries.ProductView],
) *CatalogHandlers {
	return &CatalogHandlers{
		addProduct:         addProduct,
		removeProduct:      removeProduct,
		productsByMerchant: productsByMerchant,
		productsByName:     productsByName,
	}
}

func (h *CatalogHandlers) Register(s *Server) {
	s.Handle(messages.KindMerchantAddProduct, Typed(h.MerchantAddProduct))
	s.Handle(messages.KindMerchantRemoveProduct, Typed(h.MerchantRemoveProduct))
	s.Handle(messages.KindFetchProductsByMerchantID, Typed(h.FetchProductsByMerchantID))
	s.Handle(messages.KindFetchProductsByNameAndMerchantID, Typed(h.FetchProductsByNameAndMerchantID))
}

// MerchantAddProduct replies with the new product id.
func (h *CatalogHandlers) MerchantAddProduct(ctx context.Context, req messages.MerchantAddProduct) (string, error) {
	cmd, err := commands.NewAddProductCommand(
		req.MerchantToken, req.Name, decimal.NewFromFloat(req.Price), req.Description,
	)
	if err != nil {
		return "", err
	}

	id, err := h.addProduct.Handle(ctx, cmd)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

func (h *CatalogHandlers) MerchantRemoveProduct(ctx context.Context, req messages.MerchantRemoveProduct) (string, error) {
	cmd, err := commands.NewRemoveProductCommand(req.MerchantToken, req.Name)
	if err != nil {
		return "", err
	}

	if err = h.removeProduct.Handle(ctx, cmd); err != nil {
		return "", err
	}

	return messages.Success, nil
}

// FetchProductsByMerchantID always replies with a list, empty for unknown merchants.
func (h *CatalogHandlers) FetchProductsByMerchantID(
	ctx context.Context,
	req messages.FetchProductsByMerchantID,
) ([]messages.ProductInfo, error) {
	views, err := h.productsByMerchant.Handle(ctx, queries.NewListProductsByMerchantQuery(req.MerchantID))
	if err != nil {
		return nil, err
	}

	infos := make([]messages.ProductInfo, len(views))
	for i, v := range views {
		infos[i] = toProductInfo(v)
	}
	return infos, nil
}

// FetchProductsByNameAndMerchantID replies with null when nothing matches.
func (h *CatalogHandlers) FetchProductsByNameAndMerchantID(
	ctx context.Context,
	req messages.FetchProductsByNameAndMerchantID,
) ([]messages.ProductInfo, error) {
	views, err := h.productsByName.Handle(ctx, queries.NewListProductsByNameQuery(req.MerchantID, req.Name))
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, nil
	}

	infos := make([]messages.ProductInfo, len(views))
	for i, v := range views {
		infos[i] = toProductInfo(v)
	}
	return infos, nil
}
