package phyloxml

import (
	"errors"
	"fmt"
)

var (
	// ErrNotPresent is returned by singular accessors when the backing
	// collection is empty.
	ErrNotPresent = errors.New("phyloxml: value not present")

	// ErrMultipleValues is returned by singular accessors when the backing
	// collection holds more than one value.
	ErrMultipleValues = errors.New("phyloxml: multiple values present")

	// ErrPhylogenyNotFound is returned when no phylogeny has a given name.
	ErrPhylogenyNotFound = errors.New("phyloxml: no phylogeny found")

	// ErrAttached is returned when attaching a clade that already has a
	// parent or is the root of a phylogeny.
	ErrAttached = errors.New("phyloxml: clade is already attached")

	// ErrCycle is returned when attaching a clade below one of its own
	// descendants.
	ErrCycle = errors.New("phyloxml: clade would become its own ancestor")

	// ErrUnknownEventKey is returned by the Events mapping operations for
	// keys outside of the fixed key set.
	ErrUnknownEventKey = errors.New("phyloxml: unknown events key")

	// ErrColorRange is returned for color channels outside of 0-255.
	ErrColorRange = errors.New("phyloxml: color value out of range")
)

// IndexError reports an out of range index. For path lookups, Step is the
// position in the path of the first index that could not be resolved.
type IndexError struct {
	Step  int
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("phyloxml: index %d out of range [0, %d) at path "+
		"step %d", e.Index, e.Len, e.Step)
}

// MultiplicityError is returned by singular accessors such as
// (*Clade).Taxonomy. It wraps ErrNotPresent or ErrMultipleValues.
type MultiplicityError struct {
	Owner string // e.g., "Clade"
	Field string // the plural field, e.g., "taxonomies"
	Count int
}

func (e *MultiplicityError) Error() string {
	if e.Count == 0 {
		return fmt.Sprintf("phyloxml: %s().%s is empty", e.Owner, e.Field)
	}
	return fmt.Sprintf("phyloxml: more than 1 value in %s().%s (%d); use "+
		"the plural field", e.Owner, e.Field, e.Count)
}

func (e *MultiplicityError) Unwrap() error {
	if e.Count == 0 {
		return ErrNotPresent
	}
	return ErrMultipleValues
}

// single implements the singular accessor contract shared by Clade and
// Phylogeny.
func single[T any](owner, field string, vals []*T) (*T, error) {
	if len(vals) != 1 {
		return nil, &MultiplicityError{owner, field, len(vals)}
	}
	return vals[0], nil
}

func at[T any](vals []T, i, step int) (T, error) {
	if i < 0 || i >= len(vals) {
		var zero T
		return zero, &IndexError{Step: step, Index: i, Len: len(vals)}
	}
	return vals[i], nil
}

// span returns a copy of vals[i:j].
func span[T any](vals []T, i, j int) ([]T, error) {
	switch {
	case i < 0 || i > len(vals):
		return nil, &IndexError{Index: i, Len: len(vals)}
	case j < i || j > len(vals):
		return nil, &IndexError{Index: j, Len: len(vals)}
	}
	return append([]T(nil), vals[i:j]...), nil
}
