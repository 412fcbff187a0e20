package schema

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSchema is returned for duplicate or malformed name sets.
	ErrSchema = errors.New("schema: invalid dimension names")
	// ErrNameNotFound is returned when a dimension name is not part of a schema.
	ErrNameNotFound = errors.New("schema: dimension not found")
)

// SchemaError describes a rejected name set.
type SchemaError struct {
	Names  []string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema: invalid dimension names (%s): %s", strings.Join(e.Names, ", "), e.Reason)
}

// Unwrap returns ErrSchema.
func (e *SchemaError) Unwrap() error { return ErrSchema }

// NameNotFoundError reports a lookup of an unknown dimension.
type NameNotFoundError struct {
	Name  string
	Known []string
}

func (e *NameNotFoundError) Error() string {
	return fmt.Sprintf("schema: dimension %q not found in (%s)", e.Name, strings.Join(e.Known, ", "))
}

// Unwrap returns ErrNameNotFound.
func (e *NameNotFoundError) Unwrap() error { return ErrNameNotFound }
