// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor exposes the dense storage types behind named tensors.
//
// # Overview
//
// A RawTensor is a reference-counted buffer with a shape and element strides.
// Permute and Reshape return views over the same buffer; Contiguous and
// DeepCopy allocate. Element access requires a contiguous layout.
//
// # Basic Usage
//
//	raw, _ := tensor.FromSlice([]float32{0, 1, 2, 3, 4, 5}, tensor.Shape{2, 3})
//	t, _ := raw.Permute(1, 0)         // view, shape [3 2]
//	vals := tensor.Values[float32](t) // [0 3 1 4 2 5]
//
// # Supported Data Types
//
//   - float32, float64 (floating-point)
//   - int32, int64 (signed integers)
//   - uint8 (unsigned integers)
//   - bool (masks)
package tensor
