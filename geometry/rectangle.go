// SPDX-License-Identifier: MIT

package geometry

import "fmt"

// Rectangle is an immutable width × height shape.
// The zero value is not a valid rectangle; use NewRectangle or RectangleOf.
type Rectangle struct {
	width, height int
}

// NewRectangle validates width then height and returns the rectangle.
// On failure it returns nil and the first validation error.
func NewRectangle(width, height int) (*Rectangle, error) {
	return RectangleOf(width, height)
}

// RectangleOf is NewRectangle for values of unknown type, e.g. decoded
// documents. Each dimension is fully checked (kind, then range) before the
// next one, so an invalid width is always reported ahead of an invalid height.
func RectangleOf(width, height any) (*Rectangle, error) {
	w, err := Dimension("width", width)
	if err != nil {
		return nil, err
	}
	h, err := Dimension("height", height)
	if err != nil {
		return nil, err
	}

	return &Rectangle{width: w, height: h}, nil
}

// Area returns width*height. The error is always nil.
func (r *Rectangle) Area() (int, error) {
	return r.width * r.height, nil
}

// String renders "[Rectangle] <width>/<height>".
func (r *Rectangle) String() string {
	return fmt.Sprintf("[Rectangle] %d/%d", r.width, r.height)
}
