// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package layout reads declarative named-tensor layouts from YAML or JSON files.
//
// Example:
//
//	set, err := layout.Load("model.yaml")
//	scores, _ := set.Lookup("scores")
//	t, err := scores.Build(cpu.New())
package layout

import (
	"github.com/born-ml/namedtensor/internal/layout"
	"github.com/born-ml/namedtensor/internal/named"
	"github.com/born-ml/namedtensor/internal/tensor"
)

// Layout declares the dimensions of one named tensor.
type Layout = layout.Layout

// Dim is one declared dimension.
type Dim = layout.Dim

// Set is the top-level document of a layout file.
type Set = layout.Set

// ErrInvalid is returned for layouts that cannot describe a tensor.
var ErrInvalid = layout.ErrInvalid

// Load reads a .yaml, .yml or .json layout file.
func Load(path string) (*Set, error) {
	return layout.Load(path)
}

// ParseYAML decodes and validates a YAML layout document.
func ParseYAML(data []byte) (*Set, error) {
	return layout.ParseYAML(data)
}

// ParseJSON decodes and validates a JSON layout document.
func ParseJSON(data []byte) (*Set, error) {
	return layout.ParseJSON(data)
}

// FromTensor describes an existing tensor as a layout.
func FromTensor(name string, dtype tensor.DataType, t *named.NamedTensor) Layout {
	return layout.FromTensor(name, dtype, t)
}
