// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/namedtensor/internal/backend/cpu"
	"github.com/born-ml/namedtensor/named"
	"github.com/born-ml/namedtensor/tensor"
)

// Backend allocates arrays in host memory.
type Backend = internalcpu.CPUBackend

// Array is a CPU-resident array.
type Array = internalcpu.Array

// Compile-time checks.
var (
	_ named.Allocator = (*Backend)(nil)
	_ named.Array     = (*Array)(nil)
)

// New creates a new CPU backend.
//
// Example:
//
//	backend := cpu.New()
//	raw, _ := backend.Zeros(tensor.Shape{2, 3}, tensor.Float32)
func New() *Backend {
	return internalcpu.New()
}

// Wrap adapts an existing raw tensor without copying.
func Wrap(raw *tensor.RawTensor) *Array {
	return internalcpu.Wrap(raw)
}

// FromSlice copies data into a new array.
func FromSlice[T tensor.DType](data []T, shape tensor.Shape) (*Array, error) {
	return internalcpu.FromSlice(data, shape)
}

// Arange creates an array holding 0..n-1 in row-major order.
func Arange[T tensor.Number](shape tensor.Shape) (*Array, error) {
	return internalcpu.Arange[T](shape)
}

// Values copies the elements of a CPU array in row-major order.
func Values[T tensor.DType](a named.Array) ([]T, error) {
	return internalcpu.Values[T](a)
}
