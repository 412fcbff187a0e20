package tensor

import "fmt"

// InferDim marks the single dimension whose size Shape.Infer derives from the element count.
const InferDim = -1

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Infer resolves at most one InferDim entry so that the result holds exactly
// total elements. The receiver is not modified.
//
// Examples:
//
//	Shape{2, -1}.Infer(12)    → (2, 6)
//	Shape{-1, -1}.Infer(12)   → error (two unknowns)
//	Shape{5, -1}.Infer(12)    → error (12 is not divisible by 5)
func (s Shape) Infer(total int) (Shape, error) {
	out := s.Clone()
	unknown := -1
	known := 1
	for i, dim := range s {
		switch {
		case dim == InferDim:
			if unknown >= 0 {
				return nil, fmt.Errorf("shape %v: only one dimension can be inferred", []int(s))
			}
			unknown = i
		case dim <= 0:
			return nil, fmt.Errorf("shape %v: invalid dimension at index %d: %d", []int(s), i, dim)
		default:
			known *= dim
		}
	}

	if unknown < 0 {
		if known != total {
			return nil, fmt.Errorf("shape %v holds %d elements, want %d", []int(s), known, total)
		}
		return out, nil
	}
	if total%known != 0 {
		return nil, fmt.Errorf("shape %v: %d elements are not divisible by %d", []int(s), total, known)
	}
	out[unknown] = total / known
	return out, nil
}

// validatePermutation checks that axes is a permutation of 0..ndim-1.
func validatePermutation(axes []int, ndim int) error {
	if len(axes) != ndim {
		return fmt.Errorf("permute: axes length %d != ndim %d", len(axes), ndim)
	}
	seen := make([]bool, ndim)
	for _, ax := range axes {
		if ax < 0 || ax >= ndim {
			return fmt.Errorf("permute: invalid axis %d for %dD tensor", ax, ndim)
		}
		if seen[ax] {
			return fmt.Errorf("permute: duplicate axis %d", ax)
		}
		seen[ax] = true
	}
	return nil
}

// BroadcastShapes implements NumPy-style broadcasting rules.
//
// Rules:
// 1. Compare shapes element-wise from right to left
// 2. Dimensions are compatible if:
//   - They are equal, OR
//   - One of them is 1
//
// 3. Missing dimensions are treated as 1
//
// Returns the broadcasted shape, a flag indicating if broadcasting is needed, and an error if incompatible.
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5), true, nil
//	(1, 5) + (3, 5) → (3, 5), true, nil
//	(3, 5) + (3, 5) → (3, 5), false, nil
//	(3, 4) + (3, 5) → nil, false, Error
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	maxLen := max(len(a), len(b))
	result := make(Shape, maxLen)
	needsBroadcast := len(a) != len(b)

	for i := 0; i < maxLen; i++ {
		aIdx := len(a) - 1 - i
		bIdx := len(b) - 1 - i

		aDim := 1
		if aIdx >= 0 {
			aDim = a[aIdx]
		}

		bDim := 1
		if bIdx >= 0 {
			bDim = b[bIdx]
		}

		switch {
		case aDim == bDim:
			result[maxLen-1-i] = aDim
		case aDim == 1:
			result[maxLen-1-i] = bDim
			needsBroadcast = true
		case bDim == 1:
			result[maxLen-1-i] = aDim
			needsBroadcast = true
		default:
			return nil, false, fmt.Errorf("shapes not compatible for broadcasting: %v vs %v (dimension %d: %d vs %d)",
				a, b, maxLen-1-i, aDim, bDim)
		}
	}

	return result, needsBroadcast, nil
}
