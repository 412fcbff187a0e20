// Package engine defines the contract a dense-array engine must satisfy to
// back named tensors.
//
// The named layer never touches element data. It only asks the engine for
// sizes, axis permutations, contiguous reshapes and deep copies, and relies on
// the engine's size-1 broadcasting when two aligned arrays are later combined.
package engine

import "github.com/born-ml/namedtensor/internal/tensor"

// Infer is the sentinel size passed to Array.View for the one axis whose
// size the engine derives from the element count.
const Infer = tensor.InferDim

// Array is an opaque dense array.
//
// Implementations may return views that alias the receiver's storage from
// Permute and View. Callers treat every Array as logically immutable.
type Array interface {
	// Rank returns the number of axes.
	Rank() int

	// Sizes returns the size of every axis in physical order.
	Sizes() []int

	// Size returns the size of a single axis.
	Size(axis int) int

	// Permute returns an array whose axis i is axis axes[i] of the receiver.
	Permute(axes ...int) (Array, error)

	// View forces a row-major layout matching the current axis order, then
	// reshapes to sizes. At most one entry may be Infer.
	View(sizes ...int) (Array, error)

	// DeepCopy duplicates the underlying storage.
	DeepCopy() Array

	// BroadcastShape reports the shape produced when the receiver is combined
	// elementwise with other under size-1 broadcasting, or an error when the
	// engine cannot broadcast the two.
	BroadcastShape(other Array) ([]int, error)
}

// Allocator creates zero-filled arrays.
type Allocator interface {
	Zeros(shape tensor.Shape, dtype tensor.DataType) (Array, error)
}
