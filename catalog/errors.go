// SPDX-License-Identifier: MIT

package catalog

import "errors"

// Sentinel errors for catalog operations. Geometry validation errors are
// passed through unchanged (wrapped with the shape index by Document.Build).
var (
	// ErrEmptyDocument indicates the input holds no shapes.
	ErrEmptyDocument = errors.New("catalog: document has no shapes")
	// ErrUnknownKind indicates a spec kind other than rectangle or square.
	ErrUnknownKind = errors.New("catalog: unknown shape kind")
	// ErrMissingField indicates a dimension the kind requires is absent or null.
	ErrMissingField = errors.New("catalog: missing field")
	// ErrUnexpectedField indicates a dimension that does not belong to the kind.
	ErrUnexpectedField = errors.New("catalog: unexpected field")
)
