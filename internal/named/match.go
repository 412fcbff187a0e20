package named

import "github.com/born-ml/namedtensor/internal/schema"

// AssertMatch checks that tensors agree on the size of every shared dimension.
// Size-1 dimensions broadcast and are exempt.
//
// Example:
//
//	a: (batch=2, feature=3)
//	b: (feature=3, hidden=4)
//	AssertMatch(a, b) // nil
//	c: (feature=5, hidden=4)
//	AssertMatch(a, c) // DimensionConflictError naming "feature"
func AssertMatch(tensors ...*NamedTensor) error {
	shapes := make([]schema.Shape, len(tensors))
	for i, t := range tensors {
		shapes[i] = t.Shape()
	}
	if dims := schema.Conflicts(shapes...); len(dims) > 0 {
		return &DimensionConflictError{Dims: dims, Shapes: shapes}
	}
	return nil
}
