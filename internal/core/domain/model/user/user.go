package user

import (
	"errors"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrNameIsRequired         = errs.NewValueIsRequiredError("name")
	ErrContactIsRequired      = errs.NewValueIsRequiredError("contact number")
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("password hash")
	ErrMerchantAddressMissing = errs.NewValueIsRequiredError("merchant address")
	ErrUserIsNotConstructed   = errors.New("User must be created via NewUser constructor")

	// ErrNotARider is returned when availability is changed on a customer or merchant.
	ErrNotARider = errors.New("only riders have an availability status")
)

// User is an account of the identity service. The role never changes after
// registration, and the name is unique across all roles (enforced by storage).
//
// Business rules:
//   - merchants must have an address (their shop)
//   - riders start OffDuty; other roles have no availability
//   - only the password hash is kept
//
// Example:
//
//	addr, _ := kernel.NewAddress("5 Market St")
//	u, err := user.NewUser(kernel.NewUUID(), "bakery", "555-0101", user.Merchant, &addr, hash, time.Now())
type User struct {
	id           kernel.UUID
	name         string
	contact      string
	role         Role
	address      *kernel.Address
	availability *Availability
	passwordHash string
	createdAt    time.Time
	guard        guard.ConstructorGuard
}

// NewUser registers a fresh account. Riders get OffDuty availability.
func NewUser(
	id kernel.UUID,
	name string,
	contact string,
	role Role,
	address *kernel.Address,
	passwordHash string,
	createdAt time.Time,
) (*User, error) {
	u := &User{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setContact(contact),
		u.setRole(role),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}
	if err := u.setAddress(address); err != nil {
		return nil, err
	}

	if u.role == Rider {
		offDuty := OffDuty
		u.availability = &offDuty
	}

	return u, nil
}

// RestoreUser rebuilds a persisted account, keeping its stored availability.
func RestoreUser(
	id kernel.UUID,
	name string,
	contact string,
	role Role,
	address *kernel.Address,
	availability *Availability,
	passwordHash string,
	createdAt time.Time,
) (*User, error) {
	u, err := NewUser(id, name, contact, role, address, passwordHash, createdAt)
	if err != nil {
		return nil, err
	}

	if availability != nil {
		if err = u.SetAvailability(*availability); err != nil {
			return nil, err
		}
	}

	return u, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Contact() string {
	return u.contact
}

func (u *User) Role() Role {
	return u.role
}

// Address returns a copy of the address, nil when none was given.
func (u *User) Address() *kernel.Address {
	if u.address == nil {
		return nil
	}
	a := *u.address
	return &a
}

// Availability returns the rider's state, nil for other roles.
func (u *User) Availability() *Availability {
	if u.availability == nil {
		return nil
	}
	a := *u.availability
	return &a
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// IsIdleRider reports whether the user is a rider ready for a new order.
func (u *User) IsIdleRider() bool {
	return u.role == Rider && u.availability != nil && *u.availability == Idle
}

// SetAvailability changes a rider's state. Any transition between the three
// states is allowed; non-riders are rejected with ErrNotARider.
func (u *User) SetAvailability(a Availability) error {
	if u.role != Rider {
		return ErrNotARider
	}
	if err := a.Validate(); err != nil {
		return err
	}

	u.availability = &a
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	u.name = name
	return nil
}

func (u *User) setContact(contact string) error {
	contact = strings.TrimSpace(contact)
	if contact == "" {
		return ErrContactIsRequired
	}
	u.contact = contact
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return ErrPasswordHashIsRequired
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setAddress(address *kernel.Address) error {
	if address == nil {
		if u.role == Merchant {
			return ErrMerchantAddressMissing
		}
		return nil
	}
	if err := address.Validate(); err != nil {
		return err
	}
	a := *address
	u.address = &a
	return nil
}
