package cpu

import (
	"fmt"

	"github.com/born-ml/namedtensor/internal/engine"
	"github.com/born-ml/namedtensor/internal/tensor"
)

// Array adapts a RawTensor to engine.Array.
type Array struct {
	raw *tensor.RawTensor
}

// Wrap adapts raw without copying.
func Wrap(raw *tensor.RawTensor) *Array {
	return &Array{raw: raw}
}

// Raw returns the underlying RawTensor.
func (a *Array) Raw() *tensor.RawTensor {
	return a.raw
}

// Rank returns the number of axes.
func (a *Array) Rank() int {
	return len(a.raw.Shape())
}

// Sizes returns a copy of the shape.
func (a *Array) Sizes() []int {
	return a.raw.Shape().Clone()
}

// Size returns the size of one axis.
func (a *Array) Size(axis int) int {
	return a.raw.Shape()[axis]
}

// Permute returns a strided view with reordered axes.
func (a *Array) Permute(axes ...int) (engine.Array, error) {
	raw, err := a.raw.Permute(axes...)
	if err != nil {
		return nil, err
	}
	return Wrap(raw), nil
}

// View materialises a row-major layout if needed and reshapes it.
func (a *Array) View(sizes ...int) (engine.Array, error) {
	raw, err := a.raw.Contiguous().Reshape(tensor.Shape(sizes))
	if err != nil {
		return nil, err
	}
	return Wrap(raw), nil
}

// DeepCopy duplicates the storage.
func (a *Array) DeepCopy() engine.Array {
	return Wrap(a.raw.DeepCopy())
}

// BroadcastShape applies NumPy broadcasting rules to the two shapes.
func (a *Array) BroadcastShape(other engine.Array) ([]int, error) {
	out, _, err := tensor.BroadcastShapes(a.raw.Shape(), tensor.Shape(other.Sizes()))
	if err != nil {
		return nil, err
	}
	return out, nil
}

// String returns a short description of the array.
func (a *Array) String() string {
	return fmt.Sprintf("Array[%s]%v", a.raw.DType(), []int(a.raw.Shape()))
}
