// SPDX-License-Identifier: MIT
// Package: geometry
//
// Purpose:
//  - Single source of truth for dimension checks. Rectangle, Square and the
//    catalog decoder all validate through Dimension.
//  - Checks run in a fixed order: integer kind first, then range.
//
// Note:
//  - bool is its own reflect.Kind, so true/false are rejected as non-integers.
//  - Floats are rejected even when integral (3.0): the check is on the kind
//    of the value, not its magnitude.

package geometry

import (
	"math"
	"reflect"
)

// IntegerValidator checks that value is an integer greater than zero.
//
// Errors:
//   - KindType  "{name} must be an integer"       value is not of an integer kind.
//   - KindValue "{name} must be greater than 0"   value <= 0.
//
// It has no side effects.
func IntegerValidator(name string, value any) error {
	_, err := Dimension(name, value)

	return err
}

// Dimension validates value like IntegerValidator and returns it as an int.
// Named integer types (type Px int) are accepted. Unsigned values above
// math.MaxInt fail with KindValue and ErrOverflow.
func Dimension(name string, value any) (int, error) {
	if value == nil {
		return 0, newTypeError(name)
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n <= 0 {
			return 0, newValueError(name)
		}
		if n > math.MaxInt {
			return 0, newOverflowError(name)
		}

		return int(n), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u == 0 {
			return 0, newValueError(name)
		}
		if u > math.MaxInt {
			return 0, newOverflowError(name)
		}

		return int(u), nil
	default:
		return 0, newTypeError(name)
	}
}
