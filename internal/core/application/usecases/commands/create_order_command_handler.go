package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// CreateOrderCommandHandler places an order for the authenticated customer.
// Merchant and product IDs are stored as given; they are not checked against
// the other services at write time.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, identity, policy)
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	identity   ports.IdentityGateway
	policy     ports.AccessPolicy
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	identity ports.IdentityGateway,
	policy ports.AccessPolicy,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
		policy:     policy,
	}
}

// Handle authenticates the customer, creates the order in AwaitingPreparation
// and returns its ID.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	principal, err := h.identity.Authenticate(ctx, cmd.Token())
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = h.policy.Authorize(principal.Role, ports.PermCreateOrder); err != nil {
		return kernel.UUID{}, err
	}

	o, err := order.NewOrder(
		kernel.NewUUID(),
		principal.UserID,
		cmd.MerchantID(),
		cmd.Items(),
		cmd.Destination(),
		time.Now().UTC(),
	)
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

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return o.ID(), nil
}
