package schema

import (
	"sort"
	"strconv"
	"strings"
)

// Dim is one named axis with its size.
type Dim struct {
	Name string
	Size int
}

// Shape is an ordered mapping from dimension name to size.
type Shape []Dim

// Get returns the size bound to name.
func (s Shape) Get(name string) (int, bool) {
	for _, d := range s {
		if d.Name == name {
			return d.Size, true
		}
	}
	return 0, false
}

// Names returns the dimension names in order.
func (s Shape) Names() []string {
	names := make([]string, len(s))
	for i, d := range s {
		names[i] = d.Name
	}
	return names
}

// Sizes returns the sizes in order.
func (s Shape) Sizes() []int {
	sizes := make([]int, len(s))
	for i, d := range s {
		sizes[i] = d.Size
	}
	return sizes
}

// String formats the shape as "(batch=2, feature=3)".
func (s Shape) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, d := range s {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(d.Name)
		sb.WriteByte('=')
		sb.WriteString(strconv.Itoa(d.Size))
	}
	sb.WriteByte(')')
	return sb.String()
}

// Conflicts returns the names whose sizes disagree across shapes, sorted.
// Size-1 occurrences are broadcast wildcards and never conflict.
func Conflicts(shapes ...Shape) []string {
	sizes := make(map[string]int)
	conflicting := make(map[string]struct{})
	for _, shape := range shapes {
		for _, d := range shape {
			if d.Size == 1 {
				continue
			}
			if seen, ok := sizes[d.Name]; ok {
				if seen != d.Size {
					conflicting[d.Name] = struct{}{}
				}
				continue
			}
			sizes[d.Name] = d.Size
		}
	}

	names := make([]string, 0, len(conflicting))
	for name := range conflicting {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
