// SPDX-License-Identifier: MIT
// Package geometry: error kinds and sentinels.
//
// Validation failures are *ValidationError values. Their Error() text is the
// exact, user-facing message ("width must be an integer"), so unlike the
// other lvshape packages these messages carry no package prefix. Callers
// match them with errors.Is against ErrNotInteger / ErrNotPositive, or read
// the Kind with KindOf / errors.As.

package geometry

import (
	"errors"
	"fmt"
)

// Kind classifies a geometry error.
type Kind int

const (
	// KindUnknown is reported by KindOf for errors not produced by this package.
	KindUnknown Kind = iota
	// KindType: the supplied dimension is not an integer value.
	KindType
	// KindValue: the supplied dimension is an integer outside the accepted range.
	KindValue
	// KindNotImplemented: the abstract Area contract was invoked directly.
	KindNotImplemented
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindType:
		return "TypeKind"
	case KindValue:
		return "ValueKind"
	case KindNotImplemented:
		return "NotImplementedKind"
	default:
		return "UnknownKind"
	}
}

var (
	// ErrNotInteger is matched by every KindType validation error.
	ErrNotInteger = errors.New("geometry: value must be an integer")

	// ErrNotPositive is matched by KindValue errors for integers <= 0.
	ErrNotPositive = errors.New("geometry: value must be greater than 0")

	// ErrOverflow is matched by KindValue errors for unsigned values beyond int.
	ErrOverflow = errors.New("geometry: value overflows int")

	// ErrNotImplemented is returned by BaseGeometry.Area.
	// Its text is the exact contract message.
	ErrNotImplemented = errors.New("area() is not implemented")
)

// ValidationError reports a rejected dimension.
type ValidationError struct {
	Kind Kind   // KindType or KindValue
	Name string // parameter label: "width", "height", "size", ...

	msg      string
	sentinel error
}

func newTypeError(name string) *ValidationError {
	return &ValidationError{Kind: KindType, Name: name, msg: fmt.Sprintf("%s must be an integer", name), sentinel: ErrNotInteger}
}

func newValueError(name string) *ValidationError {
	return &ValidationError{Kind: KindValue, Name: name, msg: fmt.Sprintf("%s must be greater than 0", name), sentinel: ErrNotPositive}
}

func newOverflowError(name string) *ValidationError {
	return &ValidationError{Kind: KindValue, Name: name, msg: fmt.Sprintf("%s must fit in int", name), sentinel: ErrOverflow}
}

// Error returns the exact validation message.
func (e *ValidationError) Error() string {
	return e.msg
}

// Unwrap exposes the sentinel for the failed check.
func (e *ValidationError) Unwrap() error {
	return e.sentinel
}

// KindOf reports the Kind of the first geometry error found in err's chain.
// It returns KindUnknown for nil and foreign errors.
func KindOf(err error) Kind {
	var ve *ValidationError
	switch {
	case err == nil:
		return KindUnknown
	case errors.As(err, &ve):
		return ve.Kind
	case errors.Is(err, ErrNotImplemented):
		return KindNotImplemented
	default:
		return KindUnknown
	}
}
