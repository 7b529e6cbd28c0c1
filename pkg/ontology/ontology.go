// Package ontology turns a flat list of taxonomy rows into a validated tree
// with a canonical path for every entry.
//
// Load runs the whole pass: rows are read and their names validated, the
// tree is built, and paths are resolved. Any failure aborts the pass, so an
// Ontology value is always complete.
package ontology

import (
	"fmt"
	"io"
	"os"

	"github.com/cognicore/ecc/pkg/ontology/graph"
	"github.com/cognicore/ecc/pkg/ontology/node"
	"github.com/cognicore/ecc/pkg/ontology/paths"
	"github.com/cognicore/ecc/pkg/ontology/tsv"
)

// Options configures an ontology pass.
type Options struct {
	// Extension of the per-node files; paths.DefaultExtension when empty.
	Extension string
}

// Ontology is a resolved ontology tree.
type Ontology struct {
	Graph   *graph.Graph
	Entries []paths.Entry
}

// Load reads TSV rows from r and resolves them.
func Load(r io.Reader, opts Options) (*Ontology, error) {
	nodes, err := tsv.Read(r)
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	return Build(nodes, opts)
}

// LoadFile is Load for a file on disk.
func LoadFile(path string, opts Options) (*Ontology, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f, opts)
}

// Build resolves already parsed nodes.
func Build(nodes []node.Node, opts Options) (*Ontology, error) {
	g, err := graph.Build(nodes)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	entries, err := paths.Resolve(g, paths.Options{Extension: opts.Extension})
	if err != nil {
		return nil, fmt.Errorf("resolve paths: %w", err)
	}

	return &Ontology{Graph: g, Entries: entries}, nil
}

// Len returns the number of nodes.
func (o *Ontology) Len() int { return len(o.Entries) }

// Node returns the node an entry was resolved for.
func (o *Ontology) Node(e paths.Entry) node.Node { return o.Graph.Node(e.Index) }

// Root returns the root entry.
func (o *Ontology) Root() paths.Entry { return o.Entries[0] }

// Walk calls fn for every entry in breadth-first order, stopping at the first
// error.
func (o *Ontology) Walk(fn func(paths.Entry, node.Node) error) error {
	for _, e := range o.Entries {
		if err := fn(e, o.Node(e)); err != nil {
			return err
		}
	}
	return nil
}
