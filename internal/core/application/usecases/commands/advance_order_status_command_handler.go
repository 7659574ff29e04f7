package commands

import (
	"context"
	"fmt"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"
)

// AdvanceOrderStatusCommandHandler authenticates the caller, checks the role
// may request the target status, checks the caller is a party to the order,
// then advances it under optimistic concurrency.
//
// Two advances racing on one order cannot both land: the loser reloads, sees
// the winner's status and the predecessor check rejects it.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	identity   ports.IdentityGateway
	policy     ports.AccessPolicy
}

func NewAdvanceOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	identity ports.IdentityGateway,
	policy ports.AccessPolicy,
) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
		policy:     policy,
	}
}

func (h AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	principal, err := h.identity.Authenticate(ctx, cmd.Token())
	if err != nil {
		return err
	}
	if err = h.policy.Authorize(principal.Role, ports.AdvancePermission(cmd.Target())); err != nil {
		return err
	}

	return retryOnVersionConflict(ctx, func() error {
		return h.advance(ctx, principal, cmd)
	})
}

func (h AdvanceOrderStatusCommandHandler) advance(
	ctx context.Context,
	principal ports.Principal,
	cmd AdvanceOrderStatusCommand,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !isParty(o, principal) {
		return fmt.Errorf("%w: %s %s is not a party to order %s",
			ports.ErrForbidden, principal.Role, principal.UserID, o.ID())
	}

	if err = o.AdvanceStatus(cmd.Target()); err != nil {
		return err
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func isParty(o *order.Order, principal ports.Principal) bool {
	switch principal.Role {
	case user.Merchant:
		return o.IsMerchant(principal.UserID)
	case user.Rider:
		return o.IsRider(principal.UserID)
	default:
		return false
	}
}
