package htmltree

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/cognicore/ecc/pkg/ontology"
)

const rows = "name\tparent\tcode\n" +
	"Neoplasm\t\t\n" +
	"Leukemia\tNeoplasm\tLEUK\n" +
	"Lymphoma\tNeoplasm\t\n" +
	"Non-Hodgkin Lymphoma\tLymphoma\tNHL\n"

func collect(n *html.Node, a atom.Atom, out *[]*html.Node) {
	if n.Type == html.ElementNode && n.DataAtom == a {
		*out = append(*out, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collect(c, a, out)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textOf(n *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return buf.String()
}

func TestRender(t *testing.T) {
	o, err := ontology.Load(strings.NewReader(rows), ontology.Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, o))
	assert.True(t, strings.HasPrefix(buf.String(), "<!DOCTYPE html>"))

	doc, err := html.Parse(&buf)
	require.NoError(t, err)

	var titles []*html.Node
	collect(doc, atom.Title, &titles)
	require.Len(t, titles, 1)
	assert.Equal(t, "Neoplasm", textOf(titles[0]))

	var links []*html.Node
	collect(doc, atom.A, &links)
	require.Len(t, links, 4)

	var got [][2]string
	for _, a := range links {
		got = append(got, [2]string{textOf(a), attr(a, "href")})
	}
	assert.Equal(t, [][2]string{
		{"Neoplasm", "neoplasm.yml"},
		{"Leukemia", "neoplasm/leukemia.yml"},
		{"Lymphoma", "neoplasm/lymphoma.yml"},
		{"Non-Hodgkin Lymphoma", "neoplasm/lymphoma/non-hodgkin-lymphoma.yml"},
	}, got)

	var codes []*html.Node
	collect(doc, atom.Code, &codes)
	require.Len(t, codes, 2)
	assert.Equal(t, "LEUK", textOf(codes[0]))
	assert.Equal(t, "NHL", textOf(codes[1]))
}

func TestDocumentNesting(t *testing.T) {
	o, err := ontology.Load(strings.NewReader(rows), ontology.Options{})
	require.NoError(t, err)

	doc, err := Document(o)
	require.NoError(t, err)

	var items []*html.Node
	collect(doc, atom.Li, &items)
	require.Len(t, items, 4)

	// Non-Hodgkin Lymphoma sits inside the Lymphoma item.
	deepest := items[3]
	assert.Equal(t, "2", attr(deepest, "data-depth"))
	assert.Equal(t, atom.Ul, deepest.Parent.DataAtom)
	assert.Equal(t, "Lymphoma", textOf(deepest.Parent.Parent.FirstChild))
}

func TestDocumentEmpty(t *testing.T) {
	_, err := Document(nil)
	assert.Error(t, err)
}
