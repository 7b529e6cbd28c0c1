// Package htmltree exports a resolved ontology as a nested HTML list.
package htmltree

import (
	"fmt"
	"io"
	"path/filepath"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/cognicore/ecc/pkg/ontology"
	"github.com/cognicore/ecc/pkg/ontology/graph"
	"github.com/cognicore/ecc/pkg/ontology/internalerr"
	"github.com/cognicore/ecc/pkg/ontology/paths"
)

// Render writes o as an HTML document. Every node is a list item linking to
// its scaffold file; children are nested in input order.
func Render(w io.Writer, o *ontology.Ontology) error {
	doc, err := Document(o)
	if err != nil {
		return err
	}
	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// Document builds the HTML tree without rendering it.
func Document(o *ontology.Ontology) (*html.Node, error) {
	if o == nil || o.Len() == 0 {
		return nil, fmt.Errorf("%w: empty ontology", internalerr.ErrInvalidInput)
	}

	byIndex := make(map[graph.Index]paths.Entry, o.Len())
	for _, e := range o.Entries {
		byIndex[e.Index] = e
	}

	root := o.Root()
	title := root.Name().String()

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	htmlEl := element(atom.Html)
	doc.AppendChild(htmlEl)

	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, html.Attribute{Key: "charset", Val: "utf-8"}))
	titleEl := element(atom.Title)
	titleEl.AppendChild(text(title))
	head.AppendChild(titleEl)
	htmlEl.AppendChild(head)

	body := element(atom.Body)
	h1 := element(atom.H1)
	h1.AppendChild(text(title))
	body.AppendChild(h1)

	list := element(atom.Ul, html.Attribute{Key: "class", Val: "ontology"})
	list.AppendChild(item(o, byIndex, root))
	body.AppendChild(list)
	htmlEl.AppendChild(body)

	return doc, nil
}

func item(o *ontology.Ontology, byIndex map[graph.Index]paths.Entry, e paths.Entry) *html.Node {
	n := o.Node(e)

	li := element(atom.Li, html.Attribute{Key: "data-depth", Val: fmt.Sprint(e.Depth())})
	link := element(atom.A, html.Attribute{Key: "href", Val: filepath.ToSlash(e.Path())})
	link.AppendChild(text(n.Name().String()))
	li.AppendChild(link)

	if code, ok := n.Code(); ok {
		li.AppendChild(text(" "))
		c := element(atom.Code)
		c.AppendChild(text(code))
		li.AppendChild(c)
	}

	children := o.Graph.Children(e.Index)
	if len(children) == 0 {
		return li
	}

	ul := element(atom.Ul)
	for _, child := range children {
		ul.AppendChild(item(o, byIndex, byIndex[child]))
	}
	li.AppendChild(ul)
	return li
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
