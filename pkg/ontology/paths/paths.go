// Package paths derives canonical file-system paths from the ontology tree.
//
// Every node maps to the chain of its ancestors, root first, rendered as
// kebab-case directory names, followed by a file named after the node.
// Resolution is a pure function of the tree.
package paths

import (
	"path/filepath"

	"github.com/cognicore/ecc/pkg/ontology/graph"
	"github.com/cognicore/ecc/pkg/ontology/name"
	"github.com/cognicore/ecc/pkg/ontology/node"
)

// DefaultExtension is appended to the leaf segment when Options does not set
// one.
const DefaultExtension = ".yml"

// Tree is the read access Resolve needs. *graph.Graph implements it.
type Tree interface {
	Root() graph.Index
	Len() int
	Node(i graph.Index) node.Node
	Children(i graph.Index) []graph.Index
	Parents(i graph.Index) []graph.Index
}

// Options configures path resolution.
type Options struct {
	// Extension of the leaf file, including the leading dot.
	Extension string
}

func (o Options) extension() string {
	if o.Extension == "" {
		return DefaultExtension
	}
	return o.Extension
}

// Entry is the resolved path of a single node.
type Entry struct {
	Index graph.Index
	// Chain holds the names from the root down to the node itself.
	Chain []name.Name
	// Segments holds the rendered chain; the last one carries the extension.
	Segments []string
}

// Name returns the name of the node the entry belongs to.
func (e Entry) Name() name.Name { return e.Chain[len(e.Chain)-1] }

// Depth is 0 for the root.
func (e Entry) Depth() int { return len(e.Chain) - 1 }

// Path joins the segments into a relative file path.
func (e Entry) Path() string { return filepath.Join(e.Segments...) }

// Dir is the directory holding the entry's file.
func (e Entry) Dir() string { return filepath.Join(e.Segments[:len(e.Segments)-1]...) }

// Resolve walks t breadth-first from the root and returns one entry per
// node in discovery order. Nodes that cannot be reached from the root are an
// error, as is any node whose ancestor chain does not end at the root. Two
// nodes rendering to the same file path are rejected.
func Resolve(t Tree, opts Options) ([]Entry, error) {
	ext := opts.extension()
	rootName := t.Node(t.Root()).Name()

	order := breadthFirst(t)
	entries := make([]Entry, 0, len(order))
	owners := make(map[string]name.Name, len(order))
	for _, i := range order {
		chain, err := ancestry(t, i, rootName)
		if err != nil {
			return nil, err
		}
		segs, err := Segments(chain, ext)
		if err != nil {
			return nil, err
		}
		e := Entry{Index: i, Chain: chain, Segments: segs}
		if first, ok := owners[e.Path()]; ok {
			return nil, &PathCollisionError{
				Path:   filepath.ToSlash(e.Path()),
				First:  first.String(),
				Second: e.Name().String(),
			}
		}
		owners[e.Path()] = e.Name()
		entries = append(entries, e)
	}

	if len(order) < t.Len() {
		return nil, unreachable(t, order, rootName)
	}
	return entries, nil
}

func breadthFirst(t Tree) []graph.Index {
	visited := make([]bool, t.Len())
	queue := []graph.Index{t.Root()}
	visited[t.Root()] = true

	var order []graph.Index
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		order = append(order, cur)

		for _, child := range t.Children(cur) {
			if visited[child] {
				continue
			}
			visited[child] = true
			queue = append(queue, child)
		}
	}
	return order
}

// ancestry returns the names from the root down to i.
func ancestry(t Tree, i graph.Index, rootName name.Name) ([]name.Name, error) {
	walked := []graph.Index{i}
	seen := map[graph.Index]int{i: 0}

	cur := i
	for {
		parents := t.Parents(cur)
		if len(parents) > 1 {
			names := make([]string, len(parents))
			for j, p := range parents {
				names[j] = t.Node(p).Name().String()
			}
			return nil, &MultipleParentsError{
				Name:    t.Node(cur).Name().String(),
				Parents: names,
			}
		}

		if len(parents) == 0 {
			top := t.Node(cur).Name()
			if !top.Equal(rootName) {
				return nil, &DisconnectedRootError{Name: top.String(), Root: rootName.String()}
			}
			break
		}

		cur = parents[0]
		if at, ok := seen[cur]; ok {
			cycle := walked[at:]
			names := make([]string, len(cycle))
			for j, c := range cycle {
				names[j] = t.Node(c).Name().String()
			}
			return nil, &CycleDetectedError{Names: names}
		}
		seen[cur] = len(walked)
		walked = append(walked, cur)
	}

	chain := make([]name.Name, len(walked))
	for j, idx := range walked {
		chain[len(walked)-1-j] = t.Node(idx).Name()
	}
	return chain, nil
}

// unreachable explains why some node was not reached from the root.
func unreachable(t Tree, reached []graph.Index, rootName name.Name) error {
	visited := make([]bool, t.Len())
	for _, i := range reached {
		visited[i] = true
	}
	for i := 0; i < t.Len(); i++ {
		idx := graph.Index(i)
		if visited[idx] {
			continue
		}
		if _, err := ancestry(t, idx, rootName); err != nil {
			return err
		}
		return &UnreachableNodeError{Name: t.Node(idx).Name().String()}
	}
	return nil
}
