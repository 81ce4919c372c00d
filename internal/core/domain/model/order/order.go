package order

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/ddd"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for a delivery order.
//
// An order is born Created at a delivery location, gets Assigned to exactly
// one courier and becomes Completed when that courier arrives. Both
// transitions raise a domain event into the aggregate's buffer; the unit of
// work stores buffered events in the outbox within the same transaction that
// persists the order.
//
// Invariants:
//   - id and location are always valid
//   - courierID is set iff status is Assigned or Completed
//   - status only ever moves forward: Created -> Assigned -> Completed
type Order struct {
	ddd.BaseAggregate

	id            kernel.UUID
	courierID     *kernel.UUID
	location      kernel.Location
	status        Status
	isConstructed bool
}

// NewOrder creates an order in Created status awaiting dispatch.
//
// Parameters:
//   - id: unique identifier, supplied by the caller so order intake stays
//     idempotent (the same basket always maps to the same order id)
//   - location: where the order must be delivered
//
// Returns:
//   - *Order: the created order
//   - error: joined validation errors for invalid parameters
func NewOrder(id kernel.UUID, location kernel.Location) (*Order, error) {
	o := &Order{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setLocation(location),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistent storage without raising
// events. The status/courier pairing is re-validated on the way in.
//
// Returns:
//   - *Order: the restored aggregate
//   - error: joined validation errors when the stored state is inconsistent
func RestoreOrder(id kernel.UUID, courierID *kernel.UUID, location kernel.Location, status Status) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setLocation(location),
		o.setStatus(status),
		o.setCourier(courierID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate reports a nil order or one built bypassing the constructors as not
// constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Location returns the delivery location.
func (o *Order) Location() kernel.Location {
	return o.location
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Courier returns the assigned courier's id, or nil while the order is Created.
func (o *Order) Courier() *kernel.UUID {
	if o.courierID == nil {
		return nil
	}
	id := *o.courierID
	return &id
}

// Assign hands the order to a courier and raises OrderAssigned.
// Only a Created order can be assigned; assignment is permanent.
//
// Returns:
//   - error: validation error, or a status error when the order is not Created
func (o *Order) Assign(courierID kernel.UUID) error {
	if err := errors.Join(o.Validate(), courierID.Validate()); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	o.RaiseDomainEvent(NewOrderAssigned(o.id, courierID))
	return nil
}

// Complete marks the order as delivered and raises OrderCompleted.
// Only an Assigned order can be completed; Completed is final.
//
// Returns:
//   - error: a status error when the order is not Assigned
func (o *Order) Complete() error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.RaiseDomainEvent(NewOrderCompleted(o.id))
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.location = location
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setCourier restores the courier reference, enforcing the status pairing.
func (o *Order) setCourier(courierID *kernel.UUID) error {
	if err := o.status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return err
	}

	if courierID == nil {
		o.courierID = nil
		return nil
	}

	if err := courierID.Validate(); err != nil {
		return err
	}

	id := *courierID
	o.courierID = &id
	return nil
}
