package services

import (
	"errors"
	"sort"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// ErrRiderNotFound is returned when no candidate rider is free for the order.
var ErrRiderNotFound = errors.New("rider not found")

// RiderCandidate is an idle rider as reported by the identity service.
type RiderCandidate struct {
	ID           kernel.UUID
	RegisteredAt time.Time
}

// OrderDispatcher is a domain service that picks a rider for an unassigned order.
//
// Business rules:
//   - the order must still be assignable (no rider, not completed)
//   - riders already carrying an active order are skipped
//   - the longest-registered free rider wins; ties keep input order
//   - assignment goes through Order.AssignRider, so it obeys the same
//     compare-and-set as a rider accepting by hand
//
// Example usage:
//
//	dispatcher := services.NewOrderDispatcher()
//	rider, err := dispatcher.Dispatch(o, candidates, busy)
//	if errors.Is(err, services.ErrRiderNotFound) {
//	    // nobody free, try again on the next tick
//	}
type OrderDispatcher struct{}

func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Dispatch assigns the best free rider to o and returns that rider's ID.
//
// Parameters:
//   - o: the order to dispatch
//   - riders: idle riders to consider
//   - busy: riders that already hold an active order
//
// Returns:
//   - kernel.UUID: the assigned rider
//   - error: ErrRiderNotFound, order.ErrRiderAlreadyAssigned, order.ErrOrderIsCompleted or a validation error
func (d OrderDispatcher) Dispatch(
	o *order.Order,
	riders []RiderCandidate,
	busy map[kernel.UUID]bool,
) (kernel.UUID, error) {
	if err := o.Validate(); err != nil {
		return kernel.UUID{}, err
	}
	if !o.IsAssignable() {
		if o.Status().IsTerminal() {
			return kernel.UUID{}, order.ErrOrderIsCompleted
		}
		return kernel.UUID{}, order.ErrRiderAlreadyAssigned
	}

	best, err := d.findBestRider(riders, busy)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = o.AssignRider(best); err != nil {
		return kernel.UUID{}, err
	}

	return best, nil
}

func (d OrderDispatcher) findBestRider(riders []RiderCandidate, busy map[kernel.UUID]bool) (kernel.UUID, error) {
	free := make([]RiderCandidate, 0, len(riders))
	for _, r := range riders {
		if err := r.ID.Validate(); err != nil {
			return kernel.UUID{}, err
		}
		if busy[r.ID] {
			continue
		}
		free = append(free, r)
	}

	if len(free) == 0 {
		return kernel.UUID{}, ErrRiderNotFound
	}

	sort.SliceStable(free, func(i, j int) bool {
		return free[i].RegisteredAt.Before(free[j].RegisteredAt)
	})

	return free[0].ID, nil
}
