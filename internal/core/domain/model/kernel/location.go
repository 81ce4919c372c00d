package kernel

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Coordinate is a single axis position on the dispatch grid.
type Coordinate int8

const (
	// LocationMin is the smallest valid coordinate on either axis.
	LocationMin Coordinate = 1
	// LocationMax is the largest valid coordinate on either axis.
	LocationMax Coordinate = 10
)

// ErrLocationIsNotConstructed is returned when a zero-value Location is used.
// Locations must be created via NewLocation or NewRandomLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation or NewRandomLocation constructors")

// Location is an immutable point on the dispatch grid. Both coordinates are
// validated against [LocationMin, LocationMax] at construction time, so a
// properly constructed Location can never hold an out-of-bounds position.
// The zero value is invalid; Validate reports it as not constructed.
//
// Example:
//
//	loc, err := kernel.NewLocation(3, 8)
//	if err != nil {
//	    // out of bounds
//	}
//	fmt.Println(loc) // Location(3,8)
type Location struct { //nolint:recvcheck //using for validation
	x     Coordinate
	y     Coordinate
	guard guard.ConstructorGuard
}

// NewLocation creates a Location at (x, y).
//
// Parameters:
//   - x: horizontal coordinate, within [LocationMin, LocationMax]
//   - y: vertical coordinate, within [LocationMin, LocationMax]
//
// Returns:
//   - Location: the constructed point
//   - error: ValueIsOutOfRangeError if either coordinate is out of bounds
func NewLocation(x Coordinate, y Coordinate) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setX(x), loc.setY(y)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// NewRandomLocation creates a Location with uniformly random in-bounds
// coordinates. Used when an order arrives without a resolvable address and in
// tests.
func NewRandomLocation() (Location, error) {
	span := int(LocationMax-LocationMin) + 1
	x := Coordinate(rand.IntN(span) + int(LocationMin)) //nolint:gosec // not security sensitive
	y := Coordinate(rand.IntN(span) + int(LocationMin)) //nolint:gosec // not security sensitive
	return NewLocation(x, y)
}

// Validate reports whether the Location came from a constructor.
// A zero-value Location fails with ErrLocationIsNotConstructed.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// X returns the horizontal coordinate.
func (l Location) X() Coordinate {
	return l.x
}

// Y returns the vertical coordinate.
func (l Location) Y() Coordinate {
	return l.y
}

// String implements fmt.Stringer as "Location(x,y)".
func (l Location) String() string {
	return fmt.Sprintf("Location(%d,%d)", l.x, l.y)
}

// IsEqual reports whether both locations point at the same cell.
// Both operands must be properly constructed.
//
// Returns:
//   - bool: true when coordinates match
//   - error: validation error if either location is a zero value
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l == other, nil
}

// Distance returns the Manhattan distance |x1-x2| + |y1-y2| between two
// locations. Movement on the grid is axis-aligned, so this is the exact number
// of unit steps separating them.
//
// Returns:
//   - int: the distance, 0 when the locations are equal
//   - error: validation error if either location is a zero value
func (l Location) Distance(other Location) (int, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dx := abs(l.x - other.x)
	dy := abs(l.y - other.y)
	return int(dx + dy), nil
}

// Private setters use pointer receivers so construction-time validation stays
// encapsulated next to the field it protects.
func (l *Location) setX(x Coordinate) error {
	if x < LocationMin || x > LocationMax {
		return errs.NewValueIsOutOfRangeError("x", x, LocationMin, LocationMax)
	}

	l.x = x
	return nil
}

func (l *Location) setY(y Coordinate) error {
	if y < LocationMin || y > LocationMax {
		return errs.NewValueIsOutOfRangeError("y", y, LocationMin, LocationMax)
	}

	l.y = y
	return nil
}

func abs(x Coordinate) Coordinate {
	if x < 0 {
		return -x
	}
	return x
}
