// Package graph builds the validated ontology tree.
//
// Nodes are stored in an arena and addressed by Index; edges are index pairs
// pointing from parent to child. A Graph returned by Build always has unique
// names, exactly one root, and a resolvable parent for every other node.
package graph

import (
	"github.com/cognicore/ecc/pkg/ontology/node"
)

// Index addresses a node within a Graph.
type Index int

// Edge points from a parent to one of its children.
type Edge struct {
	Parent Index
	Child  Index
}

// Graph is the ontology tree. It is read-only after Build.
type Graph struct {
	nodes    []node.Node
	edges    []Edge
	index    map[string]Index
	children [][]Index
	parents  [][]Index
	root     Index
}

// Build validates nodes and assembles them into a Graph. Construction is
// all-or-nothing: on error the returned graph is nil.
func Build(nodes []node.Node) (*Graph, error) {
	g := &Graph{
		nodes:    make([]node.Node, 0, len(nodes)),
		index:    make(map[string]Index, len(nodes)),
		children: make([][]Index, len(nodes)),
		parents:  make([][]Index, len(nodes)),
	}

	for _, n := range nodes {
		key := n.Name().String()
		if _, ok := g.index[key]; ok {
			return nil, &DuplicateNodeError{Name: key}
		}
		g.index[key] = Index(len(g.nodes))
		g.nodes = append(g.nodes, n)
	}

	root := Index(-1)
	for i, n := range g.nodes {
		if !n.IsRoot() {
			continue
		}
		if root >= 0 {
			return nil, &MultipleRootsError{
				First:  g.nodes[root].Name().String(),
				Second: n.Name().String(),
			}
		}
		root = Index(i)
	}
	if root < 0 {
		return nil, ErrNoRootFound
	}
	g.root = root

	for i, n := range g.nodes {
		if n.IsRoot() {
			continue
		}
		parent, ok := g.index[n.Parent().String()]
		if !ok {
			return nil, &MissingParentError{
				Parent: n.Parent().String(),
				Child:  n.Name().String(),
			}
		}
		g.addEdge(parent, Index(i))
	}

	return g, nil
}

func (g *Graph) addEdge(parent, child Index) {
	g.edges = append(g.edges, Edge{Parent: parent, Child: child})
	g.children[parent] = append(g.children[parent], child)
	g.parents[child] = append(g.parents[child], parent)
}

// Root returns the index of the root node.
func (g *Graph) Root() Index { return g.root }

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Node returns the node stored at i.
func (g *Graph) Node(i Index) node.Node { return g.nodes[i] }

// Lookup finds a node index by name.
func (g *Graph) Lookup(name string) (Index, bool) {
	i, ok := g.index[name]
	return i, ok
}

// Children returns the children of i in input order.
func (g *Graph) Children(i Index) []Index { return copyIndexes(g.children[i]) }

// Parents returns the nodes with an edge into i.
func (g *Graph) Parents(i Index) []Index { return copyIndexes(g.parents[i]) }

// Edges returns every edge in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

func copyIndexes(in []Index) []Index {
	out := make([]Index, len(in))
	copy(out, in)
	return out
}
