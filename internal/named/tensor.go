// Package named pairs dense arrays with dimension names.
//
// A NamedTensor addresses axes by name instead of position. Every structural
// operation computes a new name order through the schema, asks the array
// engine for the matching permutation or view, and returns a new NamedTensor.
// The schema's name order always matches the raw array's physical axis order.
package named

import (
	"fmt"
	"slices"
	"sort"

	"github.com/born-ml/namedtensor/internal/engine"
	"github.com/born-ml/namedtensor/internal/schema"
)

// NamedTensor is an immutable pairing of a raw array and a schema of the same rank.
type NamedTensor struct {
	raw    engine.Array
	schema *schema.Schema
}

// New binds names, in axis order, to the axes of raw.
//
// Example:
//
//	raw, _ := cpu.Arange[float32](tensor.Shape{2, 3})
//	x, err := named.New(raw, "batch", "feature")
func New(raw engine.Array, names ...string) (*NamedTensor, error) {
	return NewMasked(raw, names, schema.NoMask)
}

// NewMasked is New with a mask axis: mask is schema.NoMask or a 1-based axis index.
func NewMasked(raw engine.Array, names []string, mask int) (*NamedTensor, error) {
	if raw == nil {
		return nil, &ShapeMismatchError{Op: "new", Detail: "nil array"}
	}

	s, err := schema.Build(names, mask)
	if err != nil {
		return nil, err
	}

	if rank := raw.Rank(); rank > 0 {
		if rank != len(names) {
			return nil, &ShapeMismatchError{
				Op:     "new",
				Detail: fmt.Sprintf("array has %d dims, but %d names", rank, len(names)),
			}
		}
	} else if len(names) != 0 {
		return nil, &ShapeMismatchError{
			Op:     "new",
			Detail: fmt.Sprintf("scalar array cannot carry names %v", names),
		}
	}

	return &NamedTensor{raw: raw, schema: s}, nil
}

// With builds a tensor of the same kind as t around a new payload and names.
// Every structural operation constructs its result through With.
func (t *NamedTensor) With(raw engine.Array, names []string, mask int) (*NamedTensor, error) {
	return NewMasked(raw, names, mask)
}

// Dims returns the dimension names in axis order.
func (t *NamedTensor) Dims() []string {
	return t.schema.Names()
}

// VShape returns the raw axis sizes in axis order.
func (t *NamedTensor) VShape() []int {
	return t.raw.Sizes()
}

// Shape returns the ordered mapping from dimension name to size.
func (t *NamedTensor) Shape() schema.Shape {
	// Rank equality is checked at construction.
	shape, _ := t.schema.OrderedDict(t.raw.Sizes())
	return shape
}

// Rank returns the number of dimensions.
func (t *NamedTensor) Rank() int {
	return t.schema.Len()
}

// Len returns the size of the first dimension, or 0 for a scalar.
func (t *NamedTensor) Len() int {
	if t.raw.Rank() == 0 {
		return 0
	}
	return t.raw.Size(0)
}

// Values returns the raw array.
func (t *NamedTensor) Values() engine.Array {
	return t.raw
}

// Schema returns the name↔axis mapping.
func (t *NamedTensor) Schema() *schema.Schema {
	return t.schema
}

// Masked returns the name of the mask dimension, if any.
func (t *NamedTensor) Masked() (string, bool) {
	return t.schema.Masked()
}

// ToEinops renders the dimension order as a space separated label string.
func (t *NamedTensor) ToEinops() string {
	return t.schema.ToEinops()
}

// Size returns the size of the dimension bound to name.
func (t *NamedTensor) Size(name string) (int, error) {
	i, err := t.schema.Get(name)
	if err != nil {
		return 0, err
	}
	return t.raw.Size(i), nil
}

// AssertSize checks every expected dimension size and reports all mismatches at once.
func (t *NamedTensor) AssertSize(expected map[string]int) error {
	names := make([]string, 0, len(expected))
	for name := range expected {
		names = append(names, name)
	}
	sort.Strings(names)

	var mismatches []SizeExpectation
	for _, name := range names {
		actual, err := t.Size(name)
		if err != nil {
			return err
		}
		if actual != expected[name] {
			mismatches = append(mismatches, SizeExpectation{Name: name, Expected: expected[name], Actual: actual})
		}
	}
	if len(mismatches) > 0 {
		return &SizeMismatchError{Mismatches: mismatches}
	}
	return nil
}

// Clone returns a deep copy: the storage is duplicated, the immutable schema is shared.
func (t *NamedTensor) Clone() *NamedTensor {
	return &NamedTensor{raw: t.raw.DeepCopy(), schema: t.schema}
}

// String returns a human-readable representation of the tensor.
func (t *NamedTensor) String() string {
	return fmt.Sprintf("NamedTensor(%v, %s)", t.raw, t.Shape())
}

// carryMask returns the 1-based position of the current mask dimension in names,
// or schema.NoMask when it is not there.
func (t *NamedTensor) carryMask(names []string) int {
	masked, ok := t.schema.Masked()
	if !ok {
		return schema.NoMask
	}
	if i := slices.Index(names, masked); i >= 0 {
		return i + 1
	}
	return schema.NoMask
}

// checkNames verifies that names are known and distinct.
func (t *NamedTensor) checkNames(names []string) error {
	for i, name := range names {
		if _, err := t.schema.Get(name); err != nil {
			return err
		}
		if slices.Contains(names[:i], name) {
			return &SchemaError{Names: names, Reason: "duplicate name \"" + name + "\""}
		}
	}
	return nil
}
