package paths

import (
	"fmt"
	"strings"

	"github.com/cognicore/ecc/pkg/ontology/internalerr"
)

// MultipleParentsError reports a node reached by more than one parent edge.
type MultipleParentsError struct {
	Name    string
	Parents []string
}

func (e *MultipleParentsError) Error() string {
	return fmt.Sprintf("node %s has multiple parents: %s", e.Name, strings.Join(e.Parents, ", "))
}

func (e *MultipleParentsError) Unwrap() error { return internalerr.ErrInvariant }

// DisconnectedRootError reports an ancestor chain ending at a node other
// than the root.
type DisconnectedRootError struct {
	Name string
	Root string
}

func (e *DisconnectedRootError) Error() string {
	return fmt.Sprintf("found a root node named %s, expected %s", e.Name, e.Root)
}

func (e *DisconnectedRootError) Unwrap() error { return internalerr.ErrInvariant }

// CycleDetectedError reports nodes whose parents loop back on themselves
// without reaching the root. Names are listed in walk order.
type CycleDetectedError struct {
	Names []string
}

func (e *CycleDetectedError) Error() string {
	return "cycle detected: " + strings.Join(e.Names, " -> ")
}

func (e *CycleDetectedError) Unwrap() error { return internalerr.ErrInvariant }

// UnreachableNodeError reports a node the breadth-first walk from the root
// never reached even though its ancestor chain looks valid.
type UnreachableNodeError struct {
	Name string
}

func (e *UnreachableNodeError) Error() string {
	return "node is not reachable from the root: " + e.Name
}

func (e *UnreachableNodeError) Unwrap() error { return internalerr.ErrInvariant }

// EmptySegmentError reports a name that renders to an empty path segment.
type EmptySegmentError struct {
	Name string
}

func (e *EmptySegmentError) Error() string {
	return fmt.Sprintf("name %q renders to an empty path segment", e.Name)
}

func (e *EmptySegmentError) Unwrap() error { return internalerr.ErrInvalidInput }

// PathCollisionError reports two nodes that render to the same file path.
type PathCollisionError struct {
	Path   string
	First  string
	Second string
}

func (e *PathCollisionError) Error() string {
	return fmt.Sprintf("nodes %s and %s both resolve to %s", e.First, e.Second, e.Path)
}

func (e *PathCollisionError) Unwrap() error { return internalerr.ErrInvalidInput }
