package courier

import (
	"fmt"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Transport is the closed catalog of vehicles a courier can use.
// It is a value object: two transports are equal when their ids match.
// New kinds cannot be created at runtime; use the predefined constructors
// or look one up by id or name.
//
// Catalog:
//
//	id 1  Pedestrian  speed 1
//	id 2  Bicycle     speed 2
//	id 3  Car         speed 3
type Transport struct {
	id    int
	name  string
	speed int
	guard guard.ConstructorGuard
}

const (
	pedestrianID    = 1
	pedestrianSpeed = 1
	bicycleID       = 2
	bicycleSpeed    = 2
	carID           = 3
	carSpeed        = 3
)

// ErrTransportIsNotConstructed is returned when a zero-value Transport is used.
var ErrTransportIsNotConstructed = errs.NewValueIsRequiredError(
	"transport must be taken from the catalog via Pedestrian, Bicycle, Car or a lookup")

func newTransport(id int, name string, speed int) Transport {
	return Transport{
		id:    id,
		name:  name,
		speed: speed,
		guard: guard.NewConstructorGuard(),
	}
}

// Pedestrian returns the slowest transport, speed 1.
func Pedestrian() Transport {
	return newTransport(pedestrianID, "pedestrian", pedestrianSpeed)
}

// Bicycle returns the mid-tier transport, speed 2.
func Bicycle() Transport {
	return newTransport(bicycleID, "bicycle", bicycleSpeed)
}

// Car returns the fastest transport, speed 3.
func Car() Transport {
	return newTransport(carID, "car", carSpeed)
}

// AllTransports lists the whole catalog in id order.
func AllTransports() []Transport {
	return []Transport{Pedestrian(), Bicycle(), Car()}
}

// TransportFromID looks a transport up by its catalog id.
//
// Returns:
//   - Transport: the catalog entry
//   - error: ValueIsInvalidError when id is not 1, 2 or 3
func TransportFromID(id int) (Transport, error) {
	for _, t := range AllTransports() {
		if t.id == id {
			return t, nil
		}
	}
	return Transport{}, errs.NewValueIsInvalidErrorWithCause(
		"transport id", fmt.Errorf("%d is not in the transport catalog", id))
}

// TransportFromName looks a transport up by its catalog name,
// e.g. when a transport is chosen in an HTTP request.
//
// Returns:
//   - Transport: the catalog entry
//   - error: ValueIsInvalidError when the name is unknown
func TransportFromName(name string) (Transport, error) {
	for _, t := range AllTransports() {
		if t.name == name {
			return t, nil
		}
	}
	return Transport{}, errs.NewValueIsInvalidErrorWithCause(
		"transport name", fmt.Errorf("%q is not in the transport catalog", name))
}

// ID returns the catalog id.
func (t Transport) ID() int {
	return t.id
}

// Name returns the catalog name.
func (t Transport) Name() string {
	return t.name
}

// Speed returns how many grid steps the transport covers per movement tick.
func (t Transport) Speed() int {
	return t.speed
}

// IsEqual compares transports by id only.
func (t Transport) IsEqual(other Transport) bool {
	return t.id == other.id
}

// Validate reports a zero-value Transport as not constructed.
func (t Transport) Validate() error {
	return t.guard.Validate(ErrTransportIsNotConstructed)
}

// String implements fmt.Stringer.
func (t Transport) String() string {
	return t.name
}
