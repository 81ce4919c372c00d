package courier

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
	// ErrNoAssignedOrder is returned when moving a courier that has nothing to deliver.
	ErrNoAssignedOrder = errors.New("courier has no assigned order")
)

// Courier is the aggregate root for a delivery courier.
//
// A courier occupies a cell on the dispatch grid and is either Free or Busy.
// While Busy it remembers which order it is delivering and where that order
// must go; every movement tick it advances up to Speed() unit steps toward
// that target, X axis first, and releases itself back to Free on arrival.
//
// Invariants:
//   - id, name, transport and location are always valid
//   - assignedOrderID and assignedOrderLocation are both set iff status is Busy
//   - the courier never leaves the grid and never oversteps its target
//
// Example:
//
//	loc, _ := kernel.NewLocation(1, 1)
//	c, err := courier.NewCourier(kernel.NewUUID(), "Alice", courier.Bicycle(), loc)
//	if err != nil {
//	    // invalid parameters
//	}
//	_ = c.Assign(orderID, deliveryLocation)
//	arrived, _ := c.Move() // up to 2 steps toward the delivery location
type Courier struct {
	id                    kernel.UUID
	name                  string
	transport             Transport
	location              kernel.Location
	status                Status
	assignedOrderID       *kernel.UUID
	assignedOrderLocation *kernel.Location
	guard                 guard.ConstructorGuard
}

// NewCourier creates a Free courier at the given location.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: human-readable name (must be non-empty)
//   - transport: catalog transport the courier rides
//   - location: starting position on the grid
//
// Returns:
//   - *Courier: a Free courier with no assignment
//   - error: joined validation errors for every invalid parameter
func NewCourier(id kernel.UUID, name string, transport Transport, location kernel.Location) (*Courier, error) {
	c := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setTransport(transport),
		c.setLocation(location),
		c.setStatus(Free),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a courier from persistent storage, including an
// in-flight assignment. The status/assignment pairing is re-validated so a row
// corrupted outside the application cannot produce a Busy courier without a
// target or a Free courier with one.
//
// Returns:
//   - *Courier: the restored aggregate, behaviorally identical to a live one
//   - error: joined validation errors when the stored state is inconsistent
func RestoreCourier(
	id kernel.UUID,
	name string,
	transport Transport,
	location kernel.Location,
	status Status,
	assignedOrderID *kernel.UUID,
	assignedOrderLocation *kernel.Location,
) (*Courier, error) {
	c := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setTransport(transport),
		c.setLocation(location),
		c.setStatus(status),
		c.setAssignment(assignedOrderID, assignedOrderLocation),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// IsEqual compares couriers by id.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// Validate reports a nil or zero-value Courier as not constructed.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's name.
func (c *Courier) Name() string {
	return c.name
}

// Transport returns the catalog transport the courier rides.
func (c *Courier) Transport() Transport {
	return c.transport
}

// Speed returns the number of grid steps covered per movement tick.
func (c *Courier) Speed() int {
	return c.transport.Speed()
}

// Location returns the courier's current position.
func (c *Courier) Location() kernel.Location {
	return c.location
}

// Status returns Free or Busy.
func (c *Courier) Status() Status {
	return c.status
}

// AssignedOrderID returns the id of the order being delivered, or nil when the
// courier is Free.
func (c *Courier) AssignedOrderID() *kernel.UUID {
	if c.assignedOrderID == nil {
		return nil
	}
	id := *c.assignedOrderID
	return &id
}

// AssignedOrderLocation returns the delivery target of the current assignment,
// or nil when the courier is Free.
func (c *Courier) AssignedOrderLocation() *kernel.Location {
	if c.assignedOrderLocation == nil {
		return nil
	}
	loc := *c.assignedOrderLocation
	return &loc
}

// CalculateTimeToLocation estimates how many movement ticks the courier needs
// to reach target from its current position: ceil(distance / speed). A courier
// already standing on target needs 0 ticks.
//
// Returns:
//   - int: the estimate in whole ticks
//   - error: validation error when target or the courier is invalid
func (c *Courier) CalculateTimeToLocation(target kernel.Location) (int, error) {
	if err := errors.Join(c.Validate(), target.Validate()); err != nil {
		return 0, err
	}

	distance, err := c.location.Distance(target)
	if err != nil {
		return 0, err
	}

	speed := c.Speed()
	return (distance + speed - 1) / speed, nil
}

// Assign gives the courier an order to deliver and switches it to Busy.
// Only a Free courier can take an assignment.
//
// Parameters:
//   - orderID: id of the order being assigned
//   - deliveryLocation: where the order must be delivered
//
// Returns:
//   - error: validation error, or a status error when the courier is not Free
func (c *Courier) Assign(orderID kernel.UUID, deliveryLocation kernel.Location) error {
	if err := errors.Join(c.Validate(), orderID.Validate(), deliveryLocation.Validate()); err != nil {
		return err
	}

	newStatus, err := c.status.Assign()
	if err != nil {
		return err
	}

	c.status = newStatus
	c.assignedOrderID = &orderID
	c.assignedOrderLocation = &deliveryLocation
	return nil
}

// Move advances the courier one movement tick toward its assigned order:
// up to Speed() unit steps, exhausting the X axis before touching the Y axis,
// never stepping past the target. When the courier reaches the delivery
// location it releases itself back to Free and drops the assignment.
//
// Returns:
//   - bool: true when this tick ended on the delivery location
//   - error: ErrNoAssignedOrder when the courier is Free
func (c *Courier) Move() (bool, error) {
	if err := c.Validate(); err != nil {
		return false, err
	}

	if c.status != Busy || c.assignedOrderLocation == nil {
		return false, ErrNoAssignedOrder
	}

	target := *c.assignedOrderLocation
	curX, curY := c.location.X(), c.location.Y()
	tgtX, tgtY := target.X(), target.Y()

	for range c.Speed() {
		switch {
		case curX < tgtX:
			curX++
		case curX > tgtX:
			curX--
		case curY < tgtY:
			curY++
		case curY > tgtY:
			curY--
		}
	}

	newLocation, err := kernel.NewLocation(curX, curY)
	if err != nil {
		return false, err
	}
	if err = c.setLocation(newLocation); err != nil {
		return false, err
	}

	arrived, err := c.location.IsEqual(target)
	if err != nil {
		return false, err
	}
	if arrived {
		if err = c.release(); err != nil {
			return false, err
		}
	}

	return arrived, nil
}

// release drops the finished assignment and returns the courier to Free.
func (c *Courier) release() error {
	newStatus, err := c.status.Release()
	if err != nil {
		return err
	}

	c.status = newStatus
	c.assignedOrderID = nil
	c.assignedOrderLocation = nil
	return nil
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *Courier) setTransport(transport Transport) error {
	if err := transport.Validate(); err != nil {
		return err
	}

	c.transport = transport
	return nil
}

func (c *Courier) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}

func (c *Courier) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

// setAssignment restores the order id / delivery target pair, enforcing that
// both are present for Busy couriers and absent for Free ones.
func (c *Courier) setAssignment(orderID *kernel.UUID, deliveryLocation *kernel.Location) error {
	hasOrder := orderID != nil
	if hasOrder != (deliveryLocation != nil) {
		return errs.NewValueIsRequiredError("assigned order id and location must be set together")
	}

	if err := c.status.ValidateCanHaveOrder(hasOrder); err != nil {
		return err
	}

	if !hasOrder {
		c.assignedOrderID = nil
		c.assignedOrderLocation = nil
		return nil
	}

	if err := errors.Join(orderID.Validate(), deliveryLocation.Validate()); err != nil {
		return err
	}

	id := *orderID
	loc := *deliveryLocation
	c.assignedOrderID = &id
	c.assignedOrderLocation = &loc
	return nil
}
