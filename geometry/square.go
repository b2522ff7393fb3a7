// SPDX-License-Identifier: MIT

package geometry

import "fmt"

// Square is a Rectangle with equal sides. It keeps its own size for display.
type Square struct {
	rect Rectangle
	size int
}

// NewSquare validates size and returns the square.
func NewSquare(size int) (*Square, error) {
	return SquareOf(size)
}

// SquareOf is NewSquare for values of unknown type.
//
// size is checked under its own label first, so callers read
// "size must be an integer" rather than the rectangle's "width ...".
// The rectangle constructor then validates the same value again.
func SquareOf(size any) (*Square, error) {
	s, err := Dimension("size", size)
	if err != nil {
		return nil, err
	}
	r, err := RectangleOf(s, s)
	if err != nil {
		return nil, err
	}

	return &Square{rect: *r, size: s}, nil
}

// Area returns size*size, computed by the underlying rectangle.
func (s *Square) Area() (int, error) {
	return s.rect.Area()
}

// String renders "[Square] <size>/<size>".
func (s *Square) String() string {
	return fmt.Sprintf("[Square] %d/%d", s.size, s.size)
}
