package node

import (
	"github.com/cognicore/ecc/pkg/ontology/internalerr"
	"github.com/cognicore/ecc/pkg/ontology/name"
)

// MissingFieldError is returned by Builder.Build when a required field was
// never set.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "missing required field: " + e.Field
}

func (e *MissingFieldError) Unwrap() error { return internalerr.ErrInvalidInput }

// Builder assembles a Node. The zero value is ready to use.
type Builder struct {
	name      name.Name
	parent    name.Name
	code      string
	hasName   bool
	hasParent bool
}

// NewBuilder returns an empty builder.
func NewBuilder() Builder {
	return Builder{}
}

// Name sets the node name.
func (b Builder) Name(n name.Name) Builder {
	b.name = n
	b.hasName = true
	return b
}

// Parent sets the parent name. The empty name marks the root.
func (b Builder) Parent(p name.Name) Builder {
	b.parent = p
	b.hasParent = true
	return b
}

// Code sets the short code. An empty code is the same as no code.
func (b Builder) Code(c string) Builder {
	b.code = c
	return b
}

// Build returns the node, or a *MissingFieldError if the name or parent was
// not set. A name without words counts as missing.
func (b Builder) Build() (Node, error) {
	if !b.hasName || len(b.name.Words()) == 0 {
		return Node{}, &MissingFieldError{Field: "name"}
	}
	if !b.hasParent {
		return Node{}, &MissingFieldError{Field: "parent"}
	}

	return Node{
		name:    b.name,
		parent:  b.parent,
		code:    b.code,
		hasCode: b.code != "",
	}, nil
}
