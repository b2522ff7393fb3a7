// SPDX-License-Identifier: MIT

package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvshape/geometry"
)

// Shape kinds understood by Spec.Build.
const (
	KindRectangle = "rectangle"
	KindSquare    = "square"
)

// Spec describes one shape. Dimensions are left untyped on purpose.
type Spec struct {
	Kind   string `yaml:"kind"`
	Width  any    `yaml:"width,omitempty"`
	Height any    `yaml:"height,omitempty"`
	Size   any    `yaml:"size,omitempty"`
}

// Document is an ordered list of shape specs.
type Document struct {
	Shapes []Spec `yaml:"shapes"`
}

// Decode reads a Document from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("catalog: decoding document: %w", err)
	}
	if len(doc.Shapes) == 0 {
		return nil, ErrEmptyDocument
	}

	return &doc, nil
}

// Load opens path and decodes it.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: opening %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Build constructs every shape in order. On the first failure it returns
// nil and the error prefixed with the shape index.
func (d *Document) Build() ([]geometry.Shape, error) {
	shapes := make([]geometry.Shape, 0, len(d.Shapes))
	for i, spec := range d.Shapes {
		s, err := spec.Build()
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		shapes = append(shapes, s)
	}

	return shapes, nil
}

// Build constructs the shape described by s.
// Kind matching ignores case and surrounding spaces.
func (s Spec) Build() (geometry.Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s.Kind)) {
	case KindRectangle:
		if s.Size != nil {
			return nil, fmt.Errorf("%w: size on %s", ErrUnexpectedField, KindRectangle)
		}
		// Presence and validity are checked per field so width is
		// reported before anything about height.
		if err := present("width", s.Width); err != nil {
			return nil, err
		}
		if err := present("height", s.Height); err != nil {
			return nil, err
		}
		r, err := geometry.RectangleOf(s.Width, s.Height)
		if err != nil {
			return nil, err
		}
		return r, nil

	case KindSquare:
		if s.Width != nil || s.Height != nil {
			return nil, fmt.Errorf("%w: width/height on %s", ErrUnexpectedField, KindSquare)
		}
		if s.Size == nil {
			return nil, fmt.Errorf("%w: size", ErrMissingField)
		}
		sq, err := geometry.SquareOf(s.Size)
		if err != nil {
			return nil, err
		}
		return sq, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
	}
}

// present fails with ErrMissingField for nil values and otherwise runs the
// dimension validator.
func present(name string, v any) error {
	if v == nil {
		return fmt.Errorf("%w: %s", ErrMissingField, name)
	}

	return geometry.IntegerValidator(name, v)
}
