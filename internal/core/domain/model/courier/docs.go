// Package courier implements the Courier aggregate.
//
// A courier rides one of the catalog transports (pedestrian, bicycle, car)
// and is either Free or Busy. Assignment pins an order and its delivery
// location to the courier; each movement tick advances the courier up to its
// transport speed in unit steps toward that location, X axis before Y, and
// arrival releases the courier back to Free.
//
// The aggregate enforces that the assigned order id and delivery location are
// present exactly when the courier is Busy, both for live transitions and when
// restoring from storage.
package courier
