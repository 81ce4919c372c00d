package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	Created ──> Assigned ──> Completed
//
// Each transition happens exactly once: an assigned order cannot be
// reassigned, and Completed is final.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status; the order waits for a courier.
	Created

	// Assigned means a courier is delivering the order.
	Assigned

	// Completed means the order has been delivered. Final state.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Assigned:  "Assigned",
		Completed: "Completed",
	}
}

// Validate checks the Status holds one of the valid values
// (Created, Assigned, Completed).
func (s Status) Validate() error {
	if s != Created && s != Assigned && s != Completed {
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

// ValidateAssign checks whether an order in this status can be dispatched.
// Only Created orders are dispatchable; an order already carried by a courier
// or already delivered is not.
func (s Status) ValidateAssign() error {
	if s != Created {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveCourier validates the consistency between the status and the
// courier assignment: Created orders have no courier, Assigned and Completed
// orders always have one.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s != Assigned && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()),
		)
	}

	if !courier && (s == Assigned || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}

	return nil
}

// Assign transitions Created -> Assigned.
//
// Returns:
//   - (Assigned, nil) when the order was Created
//   - (0, error) otherwise
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}

	return Assigned, nil
}

// Complete transitions Assigned -> Completed.
//
// Returns:
//   - (Completed, nil) when the order was Assigned
//   - (0, error) otherwise
func (s Status) Complete() (Status, error) {
	if s != Assigned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}
