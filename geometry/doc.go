// Package geometry implements a small shape hierarchy with validated,
// immutable dimensions.
//
// What:
//
//   - BaseGeometry: the bare contract. Area fails with ErrNotImplemented.
//   - Rectangle:    two positive integer dimensions, width and height.
//   - Square:       a rectangle with width == height == size.
//
// Construction is all-or-nothing: every constructor returns either a usable
// shape or nil and an error. Shapes have no setters.
//
// Rendering:
//
//	[Rectangle] <width>/<height>
//	[Square] <size>/<size>
//
// Errors:
//
//   - KindType  / ErrNotInteger:     "<name> must be an integer"
//   - KindValue / ErrNotPositive:    "<name> must be greater than 0"
//   - KindValue / ErrOverflow:       "<name> must fit in int"
//   - KindNotImplemented / ErrNotImplemented: "area() is not implemented"
//
// Rectangle validates width before height. Square validates size under the
// "size" label before delegating to the rectangle constructor.
package geometry
