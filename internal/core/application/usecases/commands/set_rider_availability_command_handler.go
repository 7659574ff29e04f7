package commands

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// SetRiderAvailabilityCommandHandler verifies the rider's token locally, since
// the identity service issued it, then stores the new availability.
type SetRiderAvailabilityCommandHandler struct {
	uowFactory UserUoWFactory
	issuer     ports.TokenIssuer
	policy     ports.AccessPolicy
}

func NewSetRiderAvailabilityCommandHandler(
	uowFactory UserUoWFactory,
	issuer ports.TokenIssuer,
	policy ports.AccessPolicy,
) SetRiderAvailabilityCommandHandler {
	return SetRiderAvailabilityCommandHandler{
		uowFactory: uowFactory,
		issuer:     issuer,
		policy:     policy,
	}
}

func (h SetRiderAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetRiderAvailabilityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	principal, err := h.issuer.Verify(cmd.Token())
	if err != nil {
		return err
	}
	if err = h.policy.Authorize(principal.Role, ports.PermChangeAvailability); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()
	u, err := repo.Get(ctx, principal.UserID)
	if err != nil {
		return err
	}

	if err = u.SetAvailability(cmd.Availability()); err != nil {
		return err
	}

	if err = repo.Update(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
