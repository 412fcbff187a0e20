package named

import (
	"fmt"
	"slices"

	"github.com/born-ml/namedtensor/internal/schema"
)

// ForceOrder rearranges t into exactly the dimension order names, inserting
// size-1 dimensions for names t does not have. The result can be combined
// elementwise with any tensor forced into the same order, relying on the
// engine's size-1 broadcasting.
//
// Every dimension of t must appear in names; omitted dimensions are reported
// as a BroadcastError rather than silently dropped.
func (t *NamedTensor) ForceOrder(names []string) (*NamedTensor, error) {
	for i, n := range names {
		if slices.Contains(names[:i], n) {
			return nil, &SchemaError{Names: names, Reason: "duplicate name \"" + n + "\""}
		}
	}
	var omitted []string
	for _, d := range t.schema.Names() {
		if !slices.Contains(names, d) {
			omitted = append(omitted, d)
		}
	}
	if len(omitted) > 0 {
		return nil, &BroadcastError{Dims: omitted, Target: slices.Clone(names)}
	}

	present := make([]string, 0, t.Rank())
	view := make([]int, len(names))
	for i, n := range names {
		axis, err := t.schema.Get(n)
		if err != nil {
			view[i] = 1
			continue
		}
		present = append(present, n)
		view[i] = t.raw.Size(axis)
	}

	transposed, err := t.Transpose(present...)
	if err != nil {
		return nil, err
	}
	raw, err := transposed.raw.View(view...)
	if err != nil {
		return nil, &ShapeMismatchError{Op: "force order", Detail: fmt.Sprintf("view %v", view), Err: err}
	}
	return t.With(raw, slices.Clone(names), t.carryMask(names))
}

// BroadcastOrder returns a dimension order shared by t and a tensor with
// dimensions other: the names only other has, followed by t's own names.
func (t *NamedTensor) BroadcastOrder(other []string) []string {
	order := make([]string, 0, len(other)+t.Rank())
	for _, d := range other {
		if !t.schema.Has(d) && !slices.Contains(order, d) {
			order = append(order, d)
		}
	}
	return append(order, t.schema.Names()...)
}

// MaskBroadcastOrder checks that a mask tensor t can be broadcast to a tensor
// with dimensions main, and returns main as the shared order.
func (t *NamedTensor) MaskBroadcastOrder(main []string) ([]string, error) {
	var missing []string
	for _, d := range t.schema.Names() {
		if !slices.Contains(main, d) {
			missing = append(missing, d)
		}
	}
	if len(missing) > 0 {
		return nil, &BroadcastError{Dims: missing, Target: slices.Clone(main)}
	}
	return slices.Clone(main), nil
}

// Align forces a and b into a common dimension order so the engine can combine
// them elementwise. Shared dimensions must match in size (see AssertMatch).
func Align(a, b *NamedTensor) (*NamedTensor, *NamedTensor, error) {
	if err := AssertMatch(a, b); err != nil {
		return nil, nil, err
	}

	order := a.BroadcastOrder(b.Dims())
	left, err := a.ForceOrder(order)
	if err != nil {
		return nil, nil, err
	}
	right, err := b.ForceOrder(order)
	if err != nil {
		return nil, nil, err
	}

	if _, err := left.raw.BroadcastShape(right.raw); err != nil {
		return nil, nil, &ShapeMismatchError{
			Op:     "align",
			Detail: fmt.Sprintf("%s and %s", left.Shape(), right.Shape()),
			Err:    err,
		}
	}
	return left, right, nil
}

// AlignMask forces mask into the dimension order of main. Every dimension of
// mask must exist in main.
func AlignMask(mask, main *NamedTensor) (*NamedTensor, error) {
	order, err := mask.MaskBroadcastOrder(main.Dims())
	if err != nil {
		return nil, err
	}
	return mask.ForceOrder(order)
}

// BroadcastShape returns the ordered shape produced by combining tensors that
// share a dimension order, taking the non-1 size of every dimension.
func BroadcastShape(tensors ...*NamedTensor) (schema.Shape, error) {
	if len(tensors) == 0 {
		return schema.Shape{}, nil
	}
	order := tensors[0].Dims()
	out := tensors[0].Shape()
	for _, t := range tensors[1:] {
		if !slices.Equal(order, t.Dims()) {
			return nil, &BroadcastError{Dims: t.Dims(), Target: order}
		}
		for i, d := range t.Shape() {
			switch {
			case d.Size == out[i].Size || d.Size == 1:
			case out[i].Size == 1:
				out[i].Size = d.Size
			default:
				return nil, &DimensionConflictError{Dims: []string{d.Name}, Shapes: []schema.Shape{tensors[0].Shape(), t.Shape()}}
			}
		}
	}
	return out, nil
}
