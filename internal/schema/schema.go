// Package schema maps dimension names to axis positions.
//
// A Schema is an ordered, bijective mapping between unique dimension names and
// the axes of one array, plus an optional marker flagging a single axis as the
// mask axis. Schemas are immutable; every transformation returns a new value.
package schema

import (
	"iter"
	"slices"
	"strings"
	"unicode"
)

// NoMask is the mask index of a schema without a mask axis.
const NoMask = 0

// Schema is an ordered name↔axis mapping.
type Schema struct {
	names  []string
	index  map[string]int
	masked int // 0 = none, else 1-based axis index
}

// Build constructs a schema from names in axis order.
// mask is NoMask or the 1-based index of the mask axis.
func Build(names []string, mask int) (*Schema, error) {
	index := make(map[string]int, len(names))
	for i, name := range names {
		if name == "" {
			return nil, &SchemaError{Names: names, Reason: "empty name"}
		}
		if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
			return nil, &SchemaError{Names: names, Reason: "name " + quote(name) + " contains whitespace"}
		}
		if _, dup := index[name]; dup {
			return nil, &SchemaError{Names: names, Reason: "duplicate name " + quote(name)}
		}
		index[name] = i
	}
	if mask < NoMask || mask > len(names) {
		return nil, &SchemaError{Names: names, Reason: "mask index out of range"}
	}

	return &Schema{
		names:  slices.Clone(names),
		index:  index,
		masked: mask,
	}, nil
}

// Names returns a copy of the names in axis order.
func (s *Schema) Names() []string {
	return slices.Clone(s.names)
}

// Len returns the number of axes.
func (s *Schema) Len() int {
	return len(s.names)
}

// Has reports whether name is bound to an axis.
func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Get returns the axis index of name.
func (s *Schema) Get(name string) (int, error) {
	i, ok := s.index[name]
	if !ok {
		return 0, &NameNotFoundError{Name: name, Known: s.Names()}
	}
	return i, nil
}

// EnumAll yields (axis, name) pairs in axis order.
func (s *Schema) EnumAll() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, name := range s.names {
			if !yield(i, name) {
				return
			}
		}
	}
}

// MaskIndex returns the 1-based mask axis index, or NoMask.
func (s *Schema) MaskIndex() int {
	return s.masked
}

// Masked returns the name of the mask axis.
func (s *Schema) Masked() (string, bool) {
	if s.masked == NoMask {
		return "", false
	}
	return s.names[s.masked-1], true
}

// WithMask returns a copy with a different mask index.
func (s *Schema) WithMask(mask int) (*Schema, error) {
	return Build(s.names, mask)
}

// Drop returns a schema without the given names. Unknown names are ignored.
// The mask follows its axis and is cleared if that axis is dropped.
func (s *Schema) Drop(names ...string) *Schema {
	maskName, hasMask := s.Masked()
	kept := make([]string, 0, len(s.names))
	mask := NoMask
	for _, name := range s.names {
		if slices.Contains(names, name) {
			continue
		}
		kept = append(kept, name)
		if hasMask && name == maskName {
			mask = len(kept)
		}
	}

	// kept is a subset of a valid schema, so Build cannot fail.
	out, _ := Build(kept, mask)
	return out
}

// Update returns a schema with names renamed per mapping; order and mask are unchanged.
// A nil mapping leaves every name as is.
func (s *Schema) Update(mapping map[string]string) (*Schema, error) {
	renamed := make([]string, len(s.names))
	for i, name := range s.names {
		if to, ok := mapping[name]; ok {
			renamed[i] = to
		} else {
			renamed[i] = name
		}
	}
	return Build(renamed, s.masked)
}

// Append returns a schema with names added after the existing axes.
func (s *Schema) Append(names ...string) (*Schema, error) {
	return Build(append(s.Names(), names...), s.masked)
}

// OrderedDict zips the names with a parallel list of axis sizes.
func (s *Schema) OrderedDict(sizes []int) (Shape, error) {
	if len(sizes) != len(s.names) {
		return nil, &SchemaError{Names: s.Names(), Reason: "size list does not match rank"}
	}
	shape := make(Shape, len(s.names))
	for i, name := range s.names {
		shape[i] = Dim{Name: name, Size: sizes[i]}
	}
	return shape, nil
}

// ToEinops renders the axis order as a space separated label string, e.g. "batch seq hidden".
func (s *Schema) ToEinops() string {
	return strings.Join(s.names, " ")
}

// String returns the names in axis order, with the mask axis starred.
func (s *Schema) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, name := range s.names {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(name)
		if i+1 == s.masked {
			sb.WriteByte('*')
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

func quote(name string) string {
	return `"` + name + `"`
}
