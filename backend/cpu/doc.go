// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go array engine for named tensors.
//
// # Overview
//
// The CPU engine implements the engine contract used by package named:
//   - Zero-copy axis permutation (strided views)
//   - Contiguous reshape with one inferred dimension
//   - Deep copy
//   - NumPy-compatible broadcast shape computation
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/namedtensor/backend/cpu"
//	    "github.com/born-ml/namedtensor/named"
//	    "github.com/born-ml/namedtensor/tensor"
//	)
//
//	func main() {
//	    raw, _ := cpu.Arange[float32](tensor.Shape{2, 3})
//	    x, _ := named.New(raw, "batch", "feature")
//	    y, _ := x.Transpose("batch") // (feature, batch)
//	}
//
// # Thread Safety
//
// Arrays are never mutated by the engine. Views share storage with the
// array they were derived from.
package cpu
