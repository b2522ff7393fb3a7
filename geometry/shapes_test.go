// SPDX-License-Identifier: MIT
package geometry_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvshape/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Rectangle
//----------------------------------------------------------------------------//

// TestRectangle_Area checks width*height over a grid of positive dimensions.
func TestRectangle_Area(t *testing.T) {
	t.Parallel()

	for w := 1; w <= 12; w++ {
		for h := 1; h <= 12; h++ {
			r, err := geometry.NewRectangle(w, h)
			require.NoError(t, err)
			area, err := r.Area()
			require.NoError(t, err)
			require.Equalf(t, w*h, area, "Rectangle(%d, %d)", w, h)
		}
	}
}

// TestRectangle_String verifies the exact rendering.
func TestRectangle_String(t *testing.T) {
	t.Parallel()

	r, err := geometry.NewRectangle(3, 4)
	require.NoError(t, err)
	assert.Equal(t, "[Rectangle] 3/4", r.String())
	assert.Equal(t, "[Rectangle] 3/4", fmt.Sprint(r))
}

// TestRectangle_Errors covers type and range failures and validation order.
func TestRectangle_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		width, height any
		wantKind      geometry.Kind
		wantMsg       string
	}{
		{"width string", "3", 1, geometry.KindType, "width must be an integer"},
		{"width float", 2.5, 1, geometry.KindType, "width must be an integer"},
		{"width bool", true, 1, geometry.KindType, "width must be an integer"},
		{"height float", 1, 1.5, geometry.KindType, "height must be an integer"},
		{"height zero", 1, 0, geometry.KindValue, "height must be greater than 0"},
		{"height negative", 1, -7, geometry.KindValue, "height must be greater than 0"},
		{"width zero", 0, 5, geometry.KindValue, "width must be greater than 0"},
		{"both invalid values", -1, -1, geometry.KindValue, "width must be greater than 0"},
		{"width value before height type", 0, "x", geometry.KindValue, "width must be greater than 0"},
		{"width type before height value", "x", 0, geometry.KindType, "width must be an integer"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			r, err := geometry.RectangleOf(tc.width, tc.height)
			require.Nil(t, r)
			require.EqualError(t, err, tc.wantMsg)
			require.Equal(t, tc.wantKind, geometry.KindOf(err))
		})
	}
}

// TestRectangle_HeightNonPositive: Rectangle(1, v) fails for every v <= 0.
func TestRectangle_HeightNonPositive(t *testing.T) {
	t.Parallel()

	for v := 0; v >= -20; v-- {
		r, err := geometry.NewRectangle(1, v)
		require.Nil(t, r)
		require.EqualError(t, err, "height must be greater than 0")
	}
}

//----------------------------------------------------------------------------//
// Square
//----------------------------------------------------------------------------//

// TestSquare_Area checks size*size and the shared Shape surface.
func TestSquare_Area(t *testing.T) {
	t.Parallel()

	for s := 1; s <= 30; s++ {
		var sh geometry.Shape
		sq, err := geometry.NewSquare(s)
		require.NoError(t, err)
		sh = sq
		area, err := sh.Area()
		require.NoError(t, err)
		require.Equal(t, s*s, area)
	}
}

// TestSquare_String verifies the override does not reuse the rectangle label.
func TestSquare_String(t *testing.T) {
	t.Parallel()

	sq, err := geometry.NewSquare(5)
	require.NoError(t, err)
	assert.Equal(t, "[Square] 5/5", sq.String())
	assert.NotContains(t, sq.String(), "Rectangle")
}

// TestSquare_Errors reports failures under the "size" label.
func TestSquare_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		size     any
		wantKind geometry.Kind
		wantMsg  string
	}{
		{"string", "5", geometry.KindType, "size must be an integer"},
		{"float", 5.0, geometry.KindType, "size must be an integer"},
		{"bool", false, geometry.KindType, "size must be an integer"},
		{"nil", nil, geometry.KindType, "size must be an integer"},
		{"zero", 0, geometry.KindValue, "size must be greater than 0"},
		{"negative", -3, geometry.KindValue, "size must be greater than 0"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			sq, err := geometry.SquareOf(tc.size)
			require.Nil(t, sq)
			require.EqualError(t, err, tc.wantMsg)
			require.Equal(t, tc.wantKind, geometry.KindOf(err))
		})
	}
}
