// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/namedtensor/internal/tensor"
)

// DType is a constraint for tensor element types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type DType = tensor.DType

// Number is the subset of DType that supports arithmetic conversion.
type Number = tensor.Number

// DataType represents the element type of a tensor at runtime.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
)

// InferDim marks the one dimension a reshape derives from the element count.
const InferDim = tensor.InferDim

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// RawTensor is the low-level dense array.
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32)
//	data := raw.AsFloat32()  // zero-copy access
//	view, _ := raw.Permute(1, 0)
type RawTensor = tensor.RawTensor

// NewRaw creates a zero-filled raw tensor.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}

// ParseDataType parses the names produced by DataType.String.
func ParseDataType(s string) (DataType, error) {
	return tensor.ParseDataType(s)
}

// FromSlice creates a raw tensor from a Go slice.
//
// Example:
//
//	data := []float32{1, 2, 3, 4, 5, 6}
//	raw, err := tensor.FromSlice(data, tensor.Shape{2, 3})
func FromSlice[T DType](data []T, shape Shape) (*RawTensor, error) {
	return tensor.FromSlice(data, shape)
}

// Arange creates a raw tensor holding 0..n-1 in row-major order.
func Arange[T Number](shape Shape) (*RawTensor, error) {
	return tensor.Arange[T](shape)
}

// Values returns the elements of r as a typed slice.
func Values[T DType](r *RawTensor) []T {
	return tensor.Values[T](r)
}

// BroadcastShapes computes the broadcast shape for two shapes following NumPy broadcasting rules.
//
// Example:
//
//	out, needsBroadcast, err := tensor.BroadcastShapes(
//	    tensor.Shape{3, 1},
//	    tensor.Shape{3, 4},
//	)
//	// out = [3, 4], needsBroadcast = true
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}
