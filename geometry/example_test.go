// File: geometry/example_test.go
package geometry_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvshape/geometry"
)

// ExampleNewRectangle builds a rectangle and prints its label and area.
func ExampleNewRectangle() {
	r, err := geometry.NewRectangle(3, 5)
	if err != nil {
		fmt.Println(err)
		return
	}
	area, _ := r.Area()
	fmt.Println(r)
	fmt.Println(area)
	// Output:
	// [Rectangle] 3/5
	// 15
}

// ExampleNewSquare shows the square label and area.
func ExampleNewSquare() {
	s, _ := geometry.NewSquare(13)
	area, _ := s.Area()
	fmt.Println(s)
	fmt.Println(area)
	// Output:
	// [Square] 13/13
	// 169
}

// ExampleRectangleOf demonstrates rejection of untyped input, and that
// width is reported before height.
//
// Scenario:
//
//   - width "4" is a string, height -2 is out of range.
//   - Only the width failure is reported.
func ExampleRectangleOf() {
	_, err := geometry.RectangleOf("4", -2)
	fmt.Println(err)
	fmt.Println(geometry.KindOf(err), errors.Is(err, geometry.ErrNotInteger))
	// Output:
	// width must be an integer
	// TypeKind true
}

// ExampleBaseGeometry_Area invokes the bare contract.
func ExampleBaseGeometry_Area() {
	_, err := geometry.BaseGeometry{}.Area()
	fmt.Println(err)
	// Output:
	// area() is not implemented
}
