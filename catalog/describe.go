// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"

	"github.com/katalvlaran/lvshape/geometry"
)

// Entry is the reporting view of a built shape.
type Entry struct {
	Kind  string `json:"kind" yaml:"kind"`
	Label string `json:"label" yaml:"label"`
	Area  int    `json:"area" yaml:"area"`
}

// Describe reports kind, label and area of s. Shapes from outside the
// geometry package get the kind "custom".
func Describe(s geometry.Shape) (Entry, error) {
	area, err := s.Area()
	if err != nil {
		return Entry{}, fmt.Errorf("catalog: area of %s: %w", s, err)
	}

	kind := "custom"
	switch s.(type) {
	case *geometry.Rectangle:
		kind = KindRectangle
	case *geometry.Square:
		kind = KindSquare
	}

	return Entry{Kind: kind, Label: s.String(), Area: area}, nil
}

// DescribeAll applies Describe to each shape, stopping at the first error.
func DescribeAll(shapes []geometry.Shape) ([]Entry, error) {
	out := make([]Entry, 0, len(shapes))
	for _, s := range shapes {
		e, err := Describe(s)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, nil
}
