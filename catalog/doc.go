// Package catalog builds geometry shapes from declarative YAML documents.
//
// Document layout:
//
//	shapes:
//	  - kind: rectangle
//	    width: 3
//	    height: 4
//	  - kind: square
//	    size: 5
//
// Dimension values are decoded untyped, so `width: "3"`, `width: 2.5` or
// `size: true` reach geometry's validator and fail with KindType, exactly as
// they would for direct calls to RectangleOf / SquareOf.
//
// Errors:
//
//   - ErrEmptyDocument:   no input, or an empty shapes list.
//   - ErrUnknownKind:     kind is neither "rectangle" nor "square".
//   - ErrMissingField:    a required dimension is absent or null.
//   - ErrUnexpectedField: e.g. size on a rectangle.
//
// Document.Build is all-or-nothing and prefixes failures with the 0-based
// shape index ("shape 2: width must be an integer").
package catalog
