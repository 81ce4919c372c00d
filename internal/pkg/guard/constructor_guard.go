// Package guard provides the ConstructorGuard pattern: a zero-cost marker that
// lets value objects and entities detect whether they were created through
// their constructor or left as a raw zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guard belongs to
// a zero-value object and the caller did not supply its own error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. Embed one in a
// struct and set it via NewConstructorGuard inside the constructor; the zero
// value reports the object as not constructed.
//
// Example:
//
//	type Money struct {
//		amount int
//		guard  guard.ConstructorGuard
//	}
//
//	func NewMoney(amount int) (Money, error) {
//		return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (m Money) Validate() error {
//		return m.guard.Validate(errMoneyNotConstructed)
//	}
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard creates a guard in the "constructed" state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil when the guard was created via NewConstructorGuard.
// For a zero-value guard it returns err, or ErrDefaultConstructorGuard when
// err is nil.
func (g ConstructorGuard) Validate(err error) error {
	if g.constructed {
		return nil
	}
	if err == nil {
		return ErrDefaultConstructorGuard
	}
	return err
}
