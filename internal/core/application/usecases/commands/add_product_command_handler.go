package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/product"
	"fooddelivery/internal/core/ports"
)

// AddProductCommandHandler authenticates the merchant through the identity
// service and stores the product under that merchant's ID.
type AddProductCommandHandler struct {
	uowFactory ProductUoWFactory
	identity   ports.IdentityGateway
	policy     ports.AccessPolicy
}

func NewAddProductCommandHandler(
	uowFactory ProductUoWFactory,
	identity ports.IdentityGateway,
	policy ports.AccessPolicy,
) AddProductCommandHandler {
	return AddProductCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
		policy:     policy,
	}
}

// Handle returns the new product's ID. A second product with the same name
// under one merchant fails with ports.ErrAlreadyExists.
func (h AddProductCommandHandler) Handle(ctx context.Context, cmd AddProductCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	principal, err := h.identity.Authenticate(ctx, cmd.Token())
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = h.policy.Authorize(principal.Role, ports.PermManageProducts); err != nil {
		return kernel.UUID{}, err
	}

	p, err := product.NewProduct(kernel.NewUUID(), principal.UserID, cmd.Name(), cmd.Price(), cmd.Description())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return p.ID(), nil
}
