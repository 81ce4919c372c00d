// Package order implements the Order aggregate.
//
// The package includes:
//   - Order: the aggregate root holding the delivery location, the courier
//     reference and the lifecycle state
//   - Status: a state machine enforcing Created -> Assigned -> Completed,
//     each transition happening exactly once
//   - OrderAssigned / OrderCompleted: domain events raised on transitions and
//     buffered on the aggregate until the unit of work drains them into the
//     transactional outbox
package order
