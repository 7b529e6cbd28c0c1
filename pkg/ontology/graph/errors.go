package graph

import (
	"errors"
	"fmt"

	"github.com/cognicore/ecc/pkg/ontology/internalerr"
)

// ErrNoRootFound is returned when no node has an empty parent.
var ErrNoRootFound = fmt.Errorf("unable to identify root: %w", internalerr.ErrInvalidInput)

// DuplicateNodeError is returned when two nodes share a name.
type DuplicateNodeError struct {
	Name string
}

func (e *DuplicateNodeError) Error() string {
	return "attempted to insert node twice: " + e.Name
}

func (e *DuplicateNodeError) Unwrap() error { return internalerr.ErrDuplicate }

// MultipleRootsError is returned when a second node with an empty parent is
// found.
type MultipleRootsError struct {
	First  string
	Second string
}

func (e *MultipleRootsError) Error() string {
	return fmt.Sprintf("found multiple roots: %s and %s", e.First, e.Second)
}

func (e *MultipleRootsError) Unwrap() error { return internalerr.ErrInvalidInput }

// MissingParentError is returned when a parent name matches no node.
type MissingParentError struct {
	Parent string
	Child  string
}

func (e *MissingParentError) Error() string {
	return fmt.Sprintf("specified parent node does not exist: %s (parent of %s)", e.Parent, e.Child)
}

func (e *MissingParentError) Unwrap() error { return internalerr.ErrNotFound }

// IsConstruction reports whether err is one of the graph construction
// errors.
func IsConstruction(err error) bool {
	var (
		dup     *DuplicateNodeError
		roots   *MultipleRootsError
		missing *MissingParentError
	)
	return errors.Is(err, ErrNoRootFound) ||
		errors.As(err, &dup) ||
		errors.As(err, &roots) ||
		errors.As(err, &missing)
}
