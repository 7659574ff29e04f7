package commands

import (
	"context"

	"fooddelivery/internal/core/ports"
)

type RemoveProductCommandHandler struct {
	uowFactory ProductUoWFactory
	identity   ports.IdentityGateway
	policy     ports.AccessPolicy
}

func NewRemoveProductCommandHandler(
	uowFactory ProductUoWFactory,
	identity ports.IdentityGateway,
	policy ports.AccessPolicy,
) RemoveProductCommandHandler {
	return RemoveProductCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
		policy:     policy,
	}
}

// Handle deletes the merchant's product with the given name, or returns
// errs.ErrObjectNotFound when there is none.
func (h RemoveProductCommandHandler) Handle(ctx context.Context, cmd RemoveProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	principal, err := h.identity.Authenticate(ctx, cmd.Token())
	if err != nil {
		return err
	}
	if err = h.policy.Authorize(principal.Role, ports.PermManageProducts); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().RemoveByName(ctx, principal.UserID, cmd.Name()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
