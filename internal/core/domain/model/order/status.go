package order

import (
	"errors"
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// ErrStatusTransitionRejected is returned when an advance does not start from
// the documented predecessor of its target status.
var ErrStatusTransitionRejected = errors.New("status transition rejected")

// Status is the lifecycle state of an order. Values are declared in lifecycle
// order, so every accepted transition moves to a strictly greater value.
//
// State transitions:
//
//	AwaitingAssignment ──> AwaitingPreparation ──> Delivering ──> Completed
//	        (alternate initial)   (initial)
//
// Rider assignment is tracked separately (Order.Rider) and never changes status.
type Status int

const (
	// Unknown catches uninitialised values.
	Unknown Status = iota

	// AwaitingAssignment is the rider-pool state some clients start orders in.
	AwaitingAssignment

	// AwaitingPreparation is the initial state of a newly created order:
	// the merchant has not handed it over yet.
	AwaitingPreparation

	// Delivering means the merchant has handed the order over.
	Delivering

	// Completed is terminal.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:             "Unknown",
		AwaitingAssignment:  "AwaitingAssignment",
		AwaitingPreparation: "AwaitingPreparation",
		Delivering:          "Delivering",
		Completed:           "Completed",
	}
}

// getPredecessors maps each reachable target to the only status it may be entered from.
func getPredecessors() map[Status]Status {
	//nolint:exhaustive // initial and invalid states have no predecessor
	return map[Status]Status{
		AwaitingPreparation: AwaitingAssignment,
		Delivering:          AwaitingPreparation,
		Completed:           Delivering,
	}
}

// ParseStatus converts a wire name ("Delivering") into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate reports whether s is one of the four lifecycle states.
func (s Status) Validate() error {
	if s <= Unknown || s > Completed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Predecessor returns the status an order must be in to advance to s.
// ok is false when s cannot be reached by an advance.
func (s Status) Predecessor() (Status, bool) {
	p, ok := getPredecessors()[s]
	return p, ok
}

// NeedsRider reports whether an order in s must have a rider: the phases
// after assignment.
func (s Status) NeedsRider() bool {
	return s == Delivering || s == Completed
}

// IsTerminal reports whether no further advance is possible.
func (s Status) IsTerminal() bool {
	return s == Completed
}

// AdvanceTo returns target if s is its documented predecessor.
//
// Accepted:
//   - AwaitingAssignment -> AwaitingPreparation
//   - AwaitingPreparation -> Delivering
//   - Delivering -> Completed
//
// Everything else, including repeating an advance that already happened, is
// rejected with ErrStatusTransitionRejected.
func (s Status) AdvanceTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	predecessor, ok := target.Predecessor()
	if !ok || predecessor != s {
		return Unknown, fmt.Errorf("%w: %s cannot advance to %s", ErrStatusTransitionRejected, s, target)
	}

	return target, nil
}
