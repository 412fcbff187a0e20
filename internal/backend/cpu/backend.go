// Package cpu implements the array engine on CPU memory.
package cpu

import (
	"fmt"

	"github.com/born-ml/namedtensor/internal/engine"
	"github.com/born-ml/namedtensor/internal/tensor"
)

// CPUBackend allocates arrays in host memory.
type CPUBackend struct{}

// Compile-time checks.
var (
	_ engine.Allocator = (*CPUBackend)(nil)
	_ engine.Array     = (*Array)(nil)
)

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Zeros allocates a zero-filled array.
func (cpu *CPUBackend) Zeros(shape tensor.Shape, dtype tensor.DataType) (engine.Array, error) {
	raw, err := tensor.Zeros(shape, dtype)
	if err != nil {
		return nil, fmt.Errorf("zeros: %w", err)
	}
	return Wrap(raw), nil
}

// FromSlice copies data into a new array of the given shape.
func FromSlice[T tensor.DType](data []T, shape tensor.Shape) (*Array, error) {
	raw, err := tensor.FromSlice(data, shape)
	if err != nil {
		return nil, err
	}
	return Wrap(raw), nil
}

// Arange creates an array holding 0..n-1 in row-major order.
func Arange[T tensor.Number](shape tensor.Shape) (*Array, error) {
	raw, err := tensor.Arange[T](shape)
	if err != nil {
		return nil, err
	}
	return Wrap(raw), nil
}

// Values returns the elements of a in row-major order of its current axis order.
// The result is always a copy.
func Values[T tensor.DType](a engine.Array) ([]T, error) {
	arr, ok := a.(*Array)
	if !ok {
		return nil, fmt.Errorf("values: %T is not a CPU array", a)
	}
	if arr.raw.DType() != tensor.DataTypeOf[T]() {
		return nil, fmt.Errorf("values: array dtype is %s, not %s", arr.raw.DType(), tensor.DataTypeOf[T]())
	}
	src := tensor.Values[T](arr.raw)
	out := make([]T, len(src))
	copy(out, src)
	return out, nil
}
