// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package named

import (
	"github.com/born-ml/namedtensor/internal/engine"
	"github.com/born-ml/namedtensor/internal/named"
	"github.com/born-ml/namedtensor/internal/schema"
)

// NamedTensor pairs a dense array with dimension names.
type NamedTensor = named.NamedTensor

// Schema is an ordered name↔axis mapping with an optional mask axis.
type Schema = schema.Schema

// Shape is an ordered mapping from dimension name to size.
type Shape = schema.Shape

// Dim is one entry of a Shape.
type Dim = schema.Dim

// Array is the engine contract a dense array must satisfy.
type Array = engine.Array

// Allocator creates zero-filled arrays.
type Allocator = engine.Allocator

// Infer is the size sentinel for the one dimension an engine reshape derives.
const Infer = engine.Infer

// NoMask is the mask index of a schema without a mask dimension.
const NoMask = schema.NoMask

// Sentinel errors.
var (
	ErrSchema            = named.ErrSchema
	ErrNameNotFound      = named.ErrNameNotFound
	ErrShapeMismatch     = named.ErrShapeMismatch
	ErrSizeMismatch      = named.ErrSizeMismatch
	ErrDimensionConflict = named.ErrDimensionConflict
	ErrBroadcast         = named.ErrBroadcast
)

// Error detail types.
type (
	SchemaError            = named.SchemaError
	NameNotFoundError      = named.NameNotFoundError
	ShapeMismatchError     = named.ShapeMismatchError
	SizeMismatchError      = named.SizeMismatchError
	SizeExpectation        = named.SizeExpectation
	DimensionConflictError = named.DimensionConflictError
	BroadcastError         = named.BroadcastError
)

// New binds names, in axis order, to the axes of raw.
//
// Example:
//
//	raw, _ := cpu.Arange[float32](tensor.Shape{2, 3})
//	x, err := named.New(raw, "batch", "feature")
func New(raw Array, names ...string) (*NamedTensor, error) {
	return named.New(raw, names...)
}

// NewMasked is New with a mask dimension given as a 1-based axis index.
func NewMasked(raw Array, names []string, mask int) (*NamedTensor, error) {
	return named.NewMasked(raw, names, mask)
}

// BuildSchema constructs a schema without an array.
func BuildSchema(names []string, mask int) (*Schema, error) {
	return schema.Build(names, mask)
}

// AssertMatch checks that tensors agree on the size of every shared dimension.
func AssertMatch(tensors ...*NamedTensor) error {
	return named.AssertMatch(tensors...)
}

// Align forces a and b into a common dimension order for elementwise combination.
func Align(a, b *NamedTensor) (*NamedTensor, *NamedTensor, error) {
	return named.Align(a, b)
}

// AlignMask forces mask into the dimension order of main.
func AlignMask(mask, main *NamedTensor) (*NamedTensor, error) {
	return named.AlignMask(mask, main)
}

// BroadcastShape returns the shape produced by combining aligned tensors.
func BroadcastShape(tensors ...*NamedTensor) (Shape, error) {
	return named.BroadcastShape(tensors...)
}
