package named

import (
	"fmt"
	"slices"

	"github.com/born-ml/namedtensor/internal/engine"
	"github.com/born-ml/namedtensor/internal/schema"
)

// Rename relabels one dimension. The physical layout is unchanged.
func (t *NamedTensor) Rename(from, to string) (*NamedTensor, error) {
	if _, err := t.schema.Get(from); err != nil {
		return nil, err
	}
	s, err := t.schema.Update(map[string]string{from: to})
	if err != nil {
		return nil, err
	}
	return t.With(t.raw, s.Names(), s.MaskIndex())
}

// Transpose moves the listed dimensions to the end, in the given order.
// Unlisted dimensions keep their relative order in front of them.
//
// Example:
//
//	x.Dims()                  // [batch seq hidden]
//	x.Transpose("batch").Dims() // [seq hidden batch]
func (t *NamedTensor) Transpose(names ...string) (*NamedTensor, error) {
	if err := t.checkNames(names); err != nil {
		return nil, err
	}

	order := make([]string, 0, t.Rank())
	for _, d := range t.schema.Names() {
		if !slices.Contains(names, d) {
			order = append(order, d)
		}
	}
	order = append(order, names...)

	axes := make([]int, len(order))
	for i, d := range order {
		axes[i], _ = t.schema.Get(d)
	}

	raw, err := t.raw.Permute(axes...)
	if err != nil {
		return nil, &ShapeMismatchError{Op: "transpose", Detail: fmt.Sprintf("permute %v", axes), Err: err}
	}
	return t.With(raw, order, t.carryMask(order))
}

// Promote moves dims to the tail so an operation can address them last.
func (t *NamedTensor) Promote(names ...string) (*NamedTensor, error) {
	return t.Transpose(names...)
}

// Stack merges the named dimensions into a single dimension whose size is
// the product of theirs. The new dimension takes the position of the first
// merged dimension; inside it, the merged dimensions are laid out in the
// order given.
func (t *NamedTensor) Stack(names []string, name string) (*NamedTensor, error) {
	if len(names) == 0 {
		return nil, &SchemaError{Names: names, Reason: "no dimensions to stack"}
	}
	if err := t.checkNames(names); err != nil {
		return nil, err
	}

	sizes := t.raw.Sizes()
	order := make([]string, 0, t.Rank())
	out := make([]string, 0, t.Rank()-len(names)+1)
	view := make([]int, 0, cap(out))
	first := true
	for i, d := range t.schema.Names() {
		switch {
		case !slices.Contains(names, d):
			order = append(order, d)
			out = append(out, d)
			view = append(view, sizes[i])
		case first:
			order = append(order, names...)
			product := 1
			for _, m := range names {
				j, _ := t.schema.Get(m)
				product *= sizes[j]
			}
			out = append(out, name)
			view = append(view, product)
			first = false
		}
	}

	transposed, err := t.Transpose(order...)
	if err != nil {
		return nil, err
	}
	raw, err := transposed.raw.View(view...)
	if err != nil {
		return nil, &ShapeMismatchError{Op: "stack", Detail: fmt.Sprintf("view %v", view), Err: err}
	}

	mask := schema.NoMask
	if masked, ok := t.schema.Masked(); ok && !slices.Contains(names, masked) {
		mask = slices.Index(out, masked) + 1
	}
	return t.With(raw, out, mask)
}

// Split expands dim into the given dimensions. sizes holds the size of every
// new dimension except at most one, which is inferred from the size of dim.
//
// Example:
//
//	x.Dims()                                              // [x yz]
//	x.Split("yz", []string{"y", "z"}, map[string]int{"y": 3}) // [x y z]
func (t *NamedTensor) Split(dim string, names []string, sizes map[string]int) (*NamedTensor, error) {
	axis, err := t.schema.Get(dim)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, &SchemaError{Names: names, Reason: "no dimensions to split into"}
	}
	for i, n := range names {
		if slices.Contains(names[:i], n) {
			return nil, &SchemaError{Names: names, Reason: "duplicate name \"" + n + "\""}
		}
	}
	for n := range sizes {
		if !slices.Contains(names, n) {
			return nil, &SchemaError{Names: names, Reason: "size given for \"" + n + "\" which is not split off"}
		}
	}

	total := t.raw.Size(axis)
	inferred := -1
	known := 1
	parts := make([]int, len(names))
	for i, n := range names {
		size, ok := sizes[n]
		switch {
		case !ok:
			if inferred >= 0 {
				return nil, &ShapeMismatchError{
					Op:     "split",
					Detail: fmt.Sprintf("sizes of both %s and %s are unknown", names[inferred], n),
				}
			}
			inferred = i
			parts[i] = engine.Infer
		case size <= 0:
			return nil, &ShapeMismatchError{Op: "split", Detail: fmt.Sprintf("size of %s must be positive, got %d", n, size)}
		default:
			known *= size
			parts[i] = size
		}
	}
	if (inferred < 0 && known != total) || total%known != 0 {
		return nil, &ShapeMismatchError{
			Op:     "split",
			Detail: fmt.Sprintf("%s of size %d cannot be split into %v with sizes %v", dim, total, names, sizes),
		}
	}

	current := t.schema.Names()
	out := make([]string, 0, len(current)+len(names)-1)
	view := make([]int, 0, cap(out))
	for i, d := range current {
		if i != axis {
			out = append(out, d)
			view = append(view, t.raw.Size(i))
			continue
		}
		out = append(out, names...)
		view = append(view, parts...)
	}

	raw, err := t.raw.View(view...)
	if err != nil {
		return nil, &ShapeMismatchError{Op: "split", Detail: fmt.Sprintf("view %v", view), Err: err}
	}
	return t.With(raw, out, t.carryMask(out))
}

// Unsqueeze inserts a size-1 dimension in front of the first dimension.
func (t *NamedTensor) Unsqueeze(name string) (*NamedTensor, error) {
	if t.Rank() == 0 {
		raw, err := t.raw.View(1)
		if err != nil {
			return nil, &ShapeMismatchError{Op: "unsqueeze", Detail: "view [1]", Err: err}
		}
		return t.With(raw, []string{name}, schema.NoMask)
	}

	first := t.schema.Names()[0]
	if name == first {
		return nil, &SchemaError{Names: t.schema.Names(), Reason: "duplicate name \"" + name + "\""}
	}
	return t.Split(first, []string{name, first}, map[string]int{name: 1})
}

// MaskTo flags name as the mask dimension. An empty name clears the flag.
func (t *NamedTensor) MaskTo(name string) (*NamedTensor, error) {
	if name == "" {
		return t.With(t.raw, t.schema.Names(), schema.NoMask)
	}
	i, err := t.schema.Get(name)
	if err != nil {
		return nil, err
	}
	return t.With(t.raw, t.schema.Names(), i+1)
}
