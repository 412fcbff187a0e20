package named

import (
	"errors"
	"fmt"
	"strings"

	"github.com/born-ml/namedtensor/internal/schema"
)

// Schema-level errors are shared with the schema package.
var (
	ErrSchema       = schema.ErrSchema
	ErrNameNotFound = schema.ErrNameNotFound
)

type (
	// SchemaError describes a rejected name set.
	SchemaError = schema.SchemaError
	// NameNotFoundError reports a lookup of an unknown dimension.
	NameNotFoundError = schema.NameNotFoundError
)

var (
	// ErrShapeMismatch is returned when names do not fit the array rank or a
	// reshape target cannot be derived from the element count.
	ErrShapeMismatch = errors.New("named: shape mismatch")
	// ErrSizeMismatch is returned when an asserted size differs from the actual one.
	ErrSizeMismatch = errors.New("named: size mismatch")
	// ErrDimensionConflict is returned when tensors disagree on a shared dimension.
	ErrDimensionConflict = errors.New("named: dimension conflict")
	// ErrBroadcast is returned when a tensor has dimensions its broadcast target lacks.
	ErrBroadcast = errors.New("named: broadcast")
)

// ShapeMismatchError reports a rank or reshape failure.
type ShapeMismatchError struct {
	Op     string
	Detail string
	Err    error // engine failure, if any
}

func (e *ShapeMismatchError) Error() string {
	msg := fmt.Sprintf("named: %s: shape mismatch: %s", e.Op, e.Detail)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns ErrShapeMismatch and the engine cause.
func (e *ShapeMismatchError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrShapeMismatch, e.Err}
	}
	return []error{ErrShapeMismatch}
}

// SizeExpectation is one failed size assertion.
type SizeExpectation struct {
	Name     string
	Expected int
	Actual   int
}

// SizeMismatchError lists every failed size assertion.
type SizeMismatchError struct {
	Mismatches []SizeExpectation
}

func (e *SizeMismatchError) Error() string {
	parts := make([]string, len(e.Mismatches))
	for i, m := range e.Mismatches {
		parts[i] = fmt.Sprintf("size of %s should be %d, got %d", m.Name, m.Expected, m.Actual)
	}
	return "named: " + strings.Join(parts, "; ")
}

// Unwrap returns ErrSizeMismatch.
func (e *SizeMismatchError) Unwrap() error { return ErrSizeMismatch }

// DimensionConflictError reports shared dimensions whose sizes disagree.
type DimensionConflictError struct {
	Dims   []string
	Shapes []schema.Shape
}

func (e *DimensionConflictError) Error() string {
	shapes := make([]string, len(e.Shapes))
	for i, s := range e.Shapes {
		shapes[i] = s.String()
	}
	return fmt.Sprintf("named: overlapping dim names must match: %s: %s",
		strings.Join(e.Dims, ", "), strings.Join(shapes, " "))
}

// Unwrap returns ErrDimensionConflict.
func (e *DimensionConflictError) Unwrap() error { return ErrDimensionConflict }

// BroadcastError lists the dimensions that cannot be broadcast to a target order.
type BroadcastError struct {
	Dims   []string
	Target []string
}

func (e *BroadcastError) Error() string {
	return fmt.Sprintf("named: unable to broadcast dimensions %s to (%s)",
		strings.Join(e.Dims, ", "), strings.Join(e.Target, ", "))
}

// Unwrap returns ErrBroadcast.
func (e *BroadcastError) Unwrap() error { return ErrBroadcast }
