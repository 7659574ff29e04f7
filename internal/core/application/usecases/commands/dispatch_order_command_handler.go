package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

var (
	ErrNoFreeRidersFound = errors.New("no free riders found")
	ErrNoOrderFound      = errors.New("no order found")
)

// DispatchResult names the order and the rider a dispatch paired up.
type DispatchResult struct {
	OrderID kernel.UUID
	RiderID kernel.UUID
}

// DispatchOrderCommandHandler orchestrates automatic rider assignment.
// Takes the oldest assignable order, asks the identity service for idle
// riders, drops riders already carrying an active order and assigns the
// longest-registered one through the same compare-and-set path a manual
// accept uses.
//
// Example:
//
//	handler := NewDispatchOrderCommandHandler(uowFactory, identity)
//	res, err := handler.Handle(ctx, NewDispatchOrderCommand())
//	switch {
//	case errors.Is(err, ErrNoOrderFound):
//	    log.Println("No pending orders")
//	case errors.Is(err, ErrNoFreeRidersFound):
//	    log.Println("All riders are busy")
//	case err != nil:
//	    log.Printf("Dispatch failed: %v", err)
//	default:
//	    log.Printf("Rider %s assigned to %s", res.RiderID, res.OrderID)
//	}
type DispatchOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	identity   ports.IdentityGateway
}

// NewDispatchOrderCommandHandler creates a handler for rider dispatch.
func NewDispatchOrderCommandHandler(
	uowFactory OrderUoWFactory,
	identity ports.IdentityGateway,
) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
	}
}

// Handle processes one dispatch round.
// Returns ErrNoOrderFound when nothing is waiting and ErrNoFreeRidersFound
// when every idle rider is busy. A lost race surfaces as a version conflict
// from the repository and is left for the next round.
//
// The order lookup and the identity call run before the transaction opens,
// so a slow identity service never holds a connection in a transaction. The
// version check on Update still rejects the write if the order changed in
// between.
func (h DispatchOrderCommandHandler) Handle(ctx context.Context, command DispatchOrderCommand) (DispatchResult, error) {
	if err := command.Validate(); err != nil {
		return DispatchResult{}, err
	}

	uow := h.uowFactory.Create()

	o, err := uow.OrderRepository().GetFirstAssignable(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return DispatchResult{}, ErrNoOrderFound
	}
	if err != nil {
		return DispatchResult{}, err
	}

	riders, err := h.identity.IdleRiders(ctx)
	if err != nil {
		return DispatchResult{}, err
	}
	if len(riders) == 0 {
		return DispatchResult{}, ErrNoFreeRidersFound
	}

	if err = uow.Begin(ctx); err != nil {
		return DispatchResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()

	busyIDs, err := ordersRepo.GetBusyRiders(ctx)
	if err != nil {
		return DispatchResult{}, err
	}
	busy := make(map[kernel.UUID]bool, len(busyIDs))
	for _, id := range busyIDs {
		busy[id] = true
	}

	riderID, err := services.NewOrderDispatcher().Dispatch(o, riders, busy)
	if errors.Is(err, services.ErrRiderNotFound) {
		return DispatchResult{}, ErrNoFreeRidersFound
	}
	if err != nil {
		return DispatchResult{}, err
	}

	if err = ordersRepo.Update(ctx, o); err != nil {
		return DispatchResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return DispatchResult{}, err
	}

	return DispatchResult{OrderID: o.ID(), RiderID: riderID}, nil
}
