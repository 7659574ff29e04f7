package commands

import (
	"context"
)

// AssignRiderCommandHandler applies Order.AssignRider under optimistic
// concurrency. When two riders race, the loser reloads the order, finds the
// winner's rider on it and gets order.ErrRiderAlreadyAssigned.
type AssignRiderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAssignRiderCommandHandler(uowFactory OrderUoWFactory) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AssignRiderCommandHandler) Handle(ctx context.Context, cmd AssignRiderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return retryOnVersionConflict(ctx, func() error {
		return h.assign(ctx, cmd)
	})
}

func (h AssignRiderCommandHandler) assign(ctx context.Context, cmd AssignRiderCommand) error {
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

	if err = o.AssignRider(cmd.RiderID()); err != nil {
		return err
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
