// Package services holds domain services that coordinate multiple aggregates.
//
// OrderDispatcher implements the greedy matching between a Created order and
// the Free courier with the smallest estimated delivery time. It lives outside
// the aggregates because the decision needs the whole courier fleet, not a
// single aggregate's state.
package services
