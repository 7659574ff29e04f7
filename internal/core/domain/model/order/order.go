package order

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrRiderAlreadyAssigned rejects a rider acceptance once another one has landed.
	ErrRiderAlreadyAssigned = errors.New("order already has a rider")

	// ErrOrderIsCompleted rejects changes to an order in its terminal state.
	ErrOrderIsCompleted = errors.New("order is completed")
)

// Order is the aggregate governed by the lifecycle state machine. It is owned
// and mutated exclusively by the order service.
//
// Order follows these invariants:
//   - customer and merchant are fixed at creation
//   - the line-item list is non-empty and is a snapshot of catalog data
//   - the rider is nil until a rider accepts, then never changes
//   - status only moves forward (see Status.AdvanceTo)
//
// Customer, merchant and rider identifiers are weak references into the
// identity service; the order never checks that they still exist.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID is the ordering customer
	customerID kernel.UUID

	// merchantID is the only merchant that sees and prepares the order
	merchantID kernel.UUID

	// riderID is the accepting rider's ID (nil while unassigned)
	riderID *kernel.UUID

	// items are the product snapshots taken at creation
	items []LineItem

	// destination is where the order is delivered
	destination kernel.Address

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is the creation timestamp
	createdAt time.Time

	// version is the persisted revision the aggregate was loaded at
	version int

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an order in AwaitingPreparation with no rider.
//
// Parameters:
//   - id: unique identifier for the order
//   - customerID, merchantID: weak references to identity-service users
//   - items: at least one product snapshot
//   - destination: delivery address
//   - createdAt: creation timestamp
//
// Example:
//
//	bun, _ := order.NewLineItem(productID, "Bun", decimal.NewFromInt(5), "", 2)
//	dest, _ := kernel.NewAddress("123 Main St")
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, merchantID, []order.LineItem{bun}, dest, time.Now())
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	merchantID kernel.UUID,
	items []LineItem,
	destination kernel.Address,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        AwaitingPreparation,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setMerchantID(merchantID),
		o.setItems(items),
		o.setDestination(destination),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds a persisted order. It applies the same validation as
// NewOrder plus status and rider checks, and keeps the stored version for
// optimistic concurrency.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	merchantID kernel.UUID,
	riderID *kernel.UUID,
	items []LineItem,
	destination kernel.Address,
	status Status,
	createdAt time.Time,
	version int,
) (*Order, error) {
	o, err := NewOrder(id, customerID, merchantID, items, destination, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if riderID != nil {
		if err = riderID.Validate(); err != nil {
			return nil, err
		}
		rider := *riderID
		o.riderID = &rider
	}

	o.status = status
	o.version = version
	return o, nil
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Customer() kernel.UUID {
	return o.customerID
}

func (o *Order) Merchant() kernel.UUID {
	return o.merchantID
}

// Rider returns a copy of the assigned rider's ID, nil if unassigned.
func (o *Order) Rider() *kernel.UUID {
	if o.riderID == nil {
		return nil
	}
	rider := *o.riderID
	return &rider
}

// Items returns a copy of the line items.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) Destination() kernel.Address {
	return o.destination
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Version returns the persisted revision this aggregate was loaded at.
func (o *Order) Version() int {
	return o.version
}

// Total sums the line-item amounts.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Amount())
	}
	return total
}

// IsAssignable reports whether a rider may still accept the order: no rider
// yet and not completed. The status value is otherwise irrelevant.
func (o *Order) IsAssignable() bool {
	return o.riderID == nil && o.status != Completed
}

// IsMerchant reports whether id is the order's merchant.
func (o *Order) IsMerchant(id kernel.UUID) bool {
	return o.merchantID.IsEqual(id)
}

// IsRider reports whether id is the order's assigned rider.
func (o *Order) IsRider(id kernel.UUID) bool {
	return o.riderID != nil && o.riderID.IsEqual(id)
}

// AssignRider records the accepting rider. It is a compare-and-set on the
// rider being nil: a second acceptance is rejected, never overwritten, and the
// status is left unchanged.
//
// Returns:
//   - nil on success
//   - ErrRiderAlreadyAssigned if a rider has already accepted
//   - ErrOrderIsCompleted if the order is terminal
//   - a validation error for an invalid rider ID
func (o *Order) AssignRider(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	if o.riderID != nil {
		return fmt.Errorf("%w: rider %s accepted first", ErrRiderAlreadyAssigned, o.riderID)
	}
	if o.status.IsTerminal() {
		return ErrOrderIsCompleted
	}

	o.riderID = &riderID
	return nil
}

// AdvanceStatus moves the order to target if its current status is target's
// predecessor. Delivering and Completed also need an assigned rider, so an
// order only leaves the pre-assignment phase once a rider has accepted it.
// A rejected advance leaves the order untouched.
//
// Example:
//
//	if err := o.AdvanceStatus(order.Delivering); errors.Is(err, order.ErrStatusTransitionRejected) {
//	    // duplicate, out-of-order or no rider yet
//	}
func (o *Order) AdvanceStatus(target Status) error {
	newStatus, err := o.status.AdvanceTo(target)
	if err != nil {
		return err
	}
	if newStatus.NeedsRider() && o.riderID == nil {
		return fmt.Errorf("%w: %s needs an assigned rider", ErrStatusTransitionRejected, newStatus)
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setMerchantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("merchant", err)
	}
	o.merchantID = id
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("line items")
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("line item %d", i), err)
		}
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setDestination(destination kernel.Address) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destination = destination
	return nil
}
