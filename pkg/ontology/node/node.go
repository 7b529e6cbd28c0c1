// Package node defines the entries of an ontology.
package node

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/ecc/pkg/ontology/name"
)

// Node is a single ontology entry. Nodes are immutable once built.
type Node struct {
	name    name.Name
	parent  name.Name
	code    string
	hasCode bool
}

// Name returns the node name.
func (n Node) Name() name.Name { return n.name }

// Parent returns the parent name. It is empty for the root.
func (n Node) Parent() name.Name { return n.parent }

// Code returns the short code and whether one was given.
func (n Node) Code() (string, bool) { return n.code, n.hasCode }

// IsRoot reports whether the node has no parent.
func (n Node) IsRoot() bool { return n.parent.IsEmpty() }

func (n Node) String() string {
	if n.IsRoot() {
		return n.name.String()
	}
	return fmt.Sprintf("%s (parent: %s)", n.name, n.parent)
}

// record is the serialized form of a node.
type record struct {
	Name   string  `yaml:"name"`
	Parent string  `yaml:"parent"`
	Code   *string `yaml:"code,omitempty"`
}

// MarshalYAML implements yaml.Marshaler.
func (n Node) MarshalYAML() (interface{}, error) {
	rec := record{
		Name:   n.name.String(),
		Parent: n.parent.String(),
	}
	if n.hasCode {
		code := n.code
		rec.Code = &code
	}
	return rec, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Both names are validated.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	var rec struct {
		Name   *string `yaml:"name"`
		Parent *string `yaml:"parent"`
		Code   *string `yaml:"code"`
	}
	if err := value.Decode(&rec); err != nil {
		return err
	}

	b := NewBuilder()
	if rec.Name != nil {
		nm, err := name.Parse(*rec.Name)
		if err != nil {
			return fmt.Errorf("name: %w", err)
		}
		b = b.Name(nm)
	}
	if rec.Parent != nil {
		p, err := name.Parse(*rec.Parent)
		if err != nil {
			return fmt.Errorf("parent: %w", err)
		}
		b = b.Parent(p)
	}
	if rec.Code != nil {
		b = b.Code(*rec.Code)
	}

	built, err := b.Build()
	if err != nil {
		return err
	}
	*n = built
	return nil
}
