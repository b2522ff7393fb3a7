// Package lvshape is a tiny, validated shape hierarchy: a bare geometry
// contract, rectangles and squares, plus a YAML catalog and a CLI.
//
// What is inside?
//
//		• geometry/     — Geometry/Shape contracts, BaseGeometry, Rectangle, Square
//		                  and the shared IntegerValidator
//		• catalog/      — build shapes from YAML documents, describe them for output
//		• cmd/lvshape/  — command-line front end (text, json or yaml output)
//
// Guarantees:
//
//   - Shapes are immutable; constructors are all-or-nothing.
//   - Width is validated before height; squares report errors as "size".
//   - Error messages are exact and stable ("width must be an integer").
//
// Quick example:
//
//	r, _ := geometry.NewRectangle(3, 4)
//	fmt.Println(r) // [Rectangle] 3/4
//
//	go install github.com/katalvlaran/lvshape/cmd/lvshape@latest
package lvshape
