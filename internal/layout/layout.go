// Package layout reads declarative named-tensor layouts from YAML or JSON.
//
// A layout file lists tensors by name together with their ordered dimensions:
//
//	layouts:
//	  - name: attention_scores
//	    dtype: float32
//	    mask: key
//	    dims:
//	      - {name: batch, size: 8}
//	      - {name: query, size: 128}
//	      - {name: key, size: 128}
//
// Layouts are used to allocate tensors with a known schema and to check that
// tensors produced elsewhere conform to it.
package layout

import (
	"errors"
	"fmt"
	"slices"

	"github.com/born-ml/namedtensor/internal/engine"
	"github.com/born-ml/namedtensor/internal/named"
	"github.com/born-ml/namedtensor/internal/schema"
	"github.com/born-ml/namedtensor/internal/tensor"
)

// ErrInvalid is returned for layouts that cannot describe a tensor.
var ErrInvalid = errors.New("layout: invalid")

// Dim is one declared dimension.
type Dim struct {
	Name string `json:"name" yaml:"name"`
	Size int    `json:"size" yaml:"size"`
}

// Layout declares the dimensions of one named tensor.
type Layout struct {
	Name  string `json:"name" yaml:"name"`
	DType string `json:"dtype,omitempty" yaml:"dtype,omitempty"`
	Mask  string `json:"mask,omitempty" yaml:"mask,omitempty"`
	Dims  []Dim  `json:"dims" yaml:"dims"`
}

// Set is the top-level document of a layout file.
type Set struct {
	Layouts []Layout `json:"layouts" yaml:"layouts"`
}

// Names returns the dimension names in order.
func (l *Layout) Names() []string {
	names := make([]string, len(l.Dims))
	for i, d := range l.Dims {
		names[i] = d.Name
	}
	return names
}

// Shape returns the declared dimensions as an ordered shape.
func (l *Layout) Shape() schema.Shape {
	shape := make(schema.Shape, len(l.Dims))
	for i, d := range l.Dims {
		shape[i] = schema.Dim{Name: d.Name, Size: d.Size}
	}
	return shape
}

// Schema validates the dimension names and mask and returns the schema.
func (l *Layout) Schema() (*schema.Schema, error) {
	names := l.Names()
	mask := schema.NoMask
	if l.Mask != "" {
		i := slices.Index(names, l.Mask)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s: mask %q is not a dimension", ErrInvalid, l.Name, l.Mask)
		}
		mask = i + 1
	}
	s, err := schema.Build(names, mask)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalid, l.Name, err)
	}
	return s, nil
}

// Validate checks names, mask, sizes and dtype.
func (l *Layout) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("%w: layout without a name", ErrInvalid)
	}
	if _, err := l.Schema(); err != nil {
		return err
	}
	for _, d := range l.Dims {
		if d.Size <= 0 {
			return fmt.Errorf("%w: %s: size of %s must be positive, got %d", ErrInvalid, l.Name, d.Name, d.Size)
		}
	}
	if _, err := tensor.ParseDataType(l.DType); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalid, l.Name, err)
	}
	return nil
}

// Build allocates a zero-filled tensor with this layout.
func (l *Layout) Build(alloc engine.Allocator) (*named.NamedTensor, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	s, _ := l.Schema()
	dtype, _ := tensor.ParseDataType(l.DType)

	raw, err := alloc.Zeros(tensor.Shape(l.Shape().Sizes()), dtype)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", l.Name, err)
	}
	return named.NewMasked(raw, s.Names(), s.MaskIndex())
}

// Check verifies that t has exactly the declared dimensions, in order, with
// the declared sizes.
func (l *Layout) Check(t *named.NamedTensor) error {
	if want, got := l.Names(), t.Dims(); !slices.Equal(want, got) {
		return fmt.Errorf("layout %s: dims %v, want %v: %w", l.Name, got, want, named.ErrShapeMismatch)
	}
	expected := make(map[string]int, len(l.Dims))
	for _, d := range l.Dims {
		expected[d.Name] = d.Size
	}
	if err := t.AssertSize(expected); err != nil {
		return fmt.Errorf("layout %s: %w", l.Name, err)
	}
	return nil
}

// FromTensor describes an existing tensor as a layout.
func FromTensor(name string, dtype tensor.DataType, t *named.NamedTensor) Layout {
	l := Layout{Name: name, DType: dtype.String()}
	for _, d := range t.Shape() {
		l.Dims = append(l.Dims, Dim{Name: d.Name, Size: d.Size})
	}
	if masked, ok := t.Masked(); ok {
		l.Mask = masked
	}
	return l
}

// Lookup returns the layout with the given name.
func (s *Set) Lookup(name string) (*Layout, bool) {
	for i := range s.Layouts {
		if s.Layouts[i].Name == name {
			return &s.Layouts[i], true
		}
	}
	return nil, false
}

// Validate checks every layout, rejects duplicate layout names and reports
// dimensions declared with conflicting sizes across layouts.
func (s *Set) Validate() error {
	seen := make(map[string]struct{}, len(s.Layouts))
	shapes := make([]schema.Shape, 0, len(s.Layouts))
	for i := range s.Layouts {
		l := &s.Layouts[i]
		if err := l.Validate(); err != nil {
			return err
		}
		if _, dup := seen[l.Name]; dup {
			return fmt.Errorf("%w: duplicate layout %q", ErrInvalid, l.Name)
		}
		seen[l.Name] = struct{}{}
		shapes = append(shapes, l.Shape())
	}
	if dims := schema.Conflicts(shapes...); len(dims) > 0 {
		return &named.DimensionConflictError{Dims: dims, Shapes: shapes}
	}
	return nil
}
