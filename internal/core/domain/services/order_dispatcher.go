package services

import (
	"errors"
	"math"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
)

// Dispatch errors.
var (
	// ErrOrderNotDispatchable is returned when the order is not in Created status.
	ErrOrderNotDispatchable = errors.New("order is not dispatchable")
	// ErrNoCourierAvailable is returned when no Free courier exists in the candidate set.
	ErrNoCourierAvailable = errors.New("no courier available")
)

// OrderDispatcher matches a Created order with the Free courier that can
// deliver it fastest.
//
// Selection rules:
//   - only Free couriers are candidates
//   - the winner minimizes ceil(distance / speed) from the courier's current
//     position to the order's delivery location
//   - on a tie the first courier in the given slice wins, which keeps the
//     outcome deterministic for a stable candidate order
//
// Dispatch mutates both aggregates: the courier becomes Busy with the order
// pinned, and the order becomes Assigned raising OrderAssigned. The caller is
// expected to persist both in one transaction.
type OrderDispatcher struct{}

// NewOrderDispatcher creates a dispatcher. It is stateless and safe to share.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Dispatch assigns the order to the best available courier.
//
// Parameters:
//   - o: the order to dispatch (must be valid and in Created status)
//   - couriers: candidate couriers in a stable order
//
// Returns:
//   - *courier.Courier: the courier that took the order
//   - error: ErrOrderNotDispatchable when the order is not Created,
//     ErrNoCourierAvailable when no Free courier exists, or a validation error
func (d OrderDispatcher) Dispatch(o *order.Order, couriers []*courier.Courier) (*courier.Courier, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if err := o.Status().ValidateAssign(); err != nil {
		return nil, errors.Join(ErrOrderNotDispatchable, err)
	}

	best, err := d.findBestCourier(o, couriers)
	if err != nil {
		return nil, err
	}

	if err = best.Assign(o.ID(), o.Location()); err != nil {
		return nil, err
	}

	if err = o.Assign(best.ID()); err != nil {
		return nil, err
	}

	return best, nil
}

// findBestCourier scans the candidates and keeps the first courier reaching
// the minimum estimated delivery time.
func (d OrderDispatcher) findBestCourier(o *order.Order, couriers []*courier.Courier) (*courier.Courier, error) {
	var (
		bestCourier *courier.Courier
		bestTime    = math.MaxInt
	)

	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}

		if c.Status() != courier.Free {
			continue
		}

		tm, err := c.CalculateTimeToLocation(o.Location())
		if err != nil {
			return nil, err
		}

		if tm < bestTime {
			bestTime = tm
			bestCourier = c
		}
	}

	if bestCourier == nil {
		return nil, ErrNoCourierAvailable
	}

	return bestCourier, nil
}
