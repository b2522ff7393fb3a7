// SPDX-License-Identifier: MIT

package geometry

import "fmt"

// Geometry is the capability every shape provides.
type Geometry interface {
	// Area returns the surface of the shape in square units.
	Area() (int, error)
}

// Shape is a Geometry with a fixed textual label.
type Shape interface {
	Geometry
	fmt.Stringer
}

// BaseGeometry is the bare contract. It has no dimensions of its own:
// Area always fails with ErrNotImplemented, and IntegerValidator is the
// shared validation routine.
type BaseGeometry struct{}

// Area fails with ErrNotImplemented.
func (BaseGeometry) Area() (int, error) {
	return 0, ErrNotImplemented
}

// IntegerValidator calls the package-level IntegerValidator.
func (BaseGeometry) IntegerValidator(name string, value any) error {
	return IntegerValidator(name, value)
}

// Compile-time checks.
var (
	_ Geometry = BaseGeometry{}
	_ Shape    = (*Rectangle)(nil)
	_ Shape    = (*Square)(nil)
)
