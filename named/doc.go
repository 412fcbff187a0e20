// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package named addresses tensor axes by name instead of position.
//
// # Overview
//
// A NamedTensor pairs a dense array with a Schema: an ordered mapping from
// unique dimension names to axes, plus an optional mask dimension. Every
// structural operation keeps the two in sync:
//   - Rename, Transpose, Promote
//   - Stack (merge dims) and Split (the inverse), Unsqueeze
//   - MaskTo
//   - ForceOrder, BroadcastOrder, MaskBroadcastOrder, Align, AlignMask
//
// Operations never mutate their receiver; they return new tensors whose
// arrays may be views of the original storage.
//
// # Basic Usage
//
//	raw, _ := cpu.Arange[float32](tensor.Shape{2, 3, 4})
//	x, _ := named.New(raw, "x", "y", "z")
//
//	yz, _ := x.Stack([]string{"y", "z"}, "yz")                       // (x=2, yz=12)
//	back, _ := yz.Split("yz", []string{"y", "z"}, map[string]int{"y": 3}) // (x=2, y=3, z=4)
//
// # Compatibility
//
// Names replace positional alignment: two tensors can be combined when every
// shared dimension has the same size in both, size-1 dimensions acting as
// wildcards. AssertMatch enforces this rule and Align brings two tensors into
// a common order for the engine's broadcasting.
//
// # Errors
//
// All failures are reported as errors wrapping one of ErrSchema,
// ErrNameNotFound, ErrShapeMismatch, ErrSizeMismatch, ErrDimensionConflict or
// ErrBroadcast. Use errors.As with the matching *Error type for details.
package named
