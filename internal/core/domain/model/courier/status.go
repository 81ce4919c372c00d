package courier

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status is the availability state of a courier.
//
// State transitions:
//
//	Free ──> Busy ──> Free
//	(assignment)  (arrival at the delivery location)
//
// A Busy courier always carries exactly one assigned order; a Free courier
// carries none. ValidateCanHaveOrder enforces that pairing when restoring
// couriers from storage.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Free means the courier can take an assignment.
	Free

	// Busy means the courier is delivering its assigned order.
	Busy
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "Unknown",
		Free:    "Free",
		Busy:    "Busy",
	}
}

// Validate checks the Status holds one of the valid values (Free, Busy).
func (s Status) Validate() error {
	if s != Free && s != Busy {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer. Invalid values render as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateAssign checks that a courier in this status may take an order.
// Only Free couriers can be assigned.
func (s Status) ValidateAssign() error {
	if s != Free {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign an order", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveOrder checks consistency between the status and the presence
// of an assigned order: Busy requires one, Free forbids one.
func (s Status) ValidateCanHaveOrder(hasOrder bool) error {
	if hasOrder && s != Busy {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have an assigned order", s.String()),
		)
	}

	if !hasOrder && s == Busy {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no assigned order", s.String()),
		)
	}

	return nil
}

// Assign transitions Free -> Busy.
//
// Returns:
//   - (Busy, nil) when the courier was Free
//   - (0, error) otherwise
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}

	return Busy, nil
}

// Release transitions Busy -> Free when the courier arrives at the delivery
// location.
//
// Returns:
//   - (Free, nil) when the courier was Busy
//   - (0, error) otherwise
func (s Status) Release() (Status, error) {
	if s != Busy {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to release", s.String()),
		)
	}

	return Free, nil
}
