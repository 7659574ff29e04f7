package user

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Role is the fixed kind of a user account.
type Role string

const (
	Customer Role = "customer"
	Merchant Role = "merchant"
	Rider    Role = "rider"
)

// ParseRole converts a wire name into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

func (r Role) Validate() error {
	switch r {
	case Customer, Merchant, Rider:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
}

func (r Role) String() string {
	return string(r)
}

// Availability is a rider's working state. Only riders have one.
type Availability string

const (
	Idle       Availability = "idle"
	Delivering Availability = "delivering"
	OffDuty    Availability = "offDuty"
)

// ParseAvailability converts a wire name into an Availability.
func ParseAvailability(s string) (Availability, error) {
	a := Availability(s)
	if err := a.Validate(); err != nil {
		return "", err
	}
	return a, nil
}

func (a Availability) Validate() error {
	switch a {
	case Idle, Delivering, OffDuty:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("availability",
			fmt.Errorf("%q is not a valid rider status", string(a)))
	}
}

func (a Availability) String() string {
	return string(a)
}
