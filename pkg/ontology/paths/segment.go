package paths

import (
	"strings"

	"github.com/cognicore/ecc/pkg/ontology/name"
)

// Segment renders n as a lowercase, hyphen-separated path segment.
//
// Words are joined with hyphens and any character other than a letter or a
// digit inside a word also becomes a hyphen. Apostrophes are dropped.
// Letters and digits are never separated, so "KMT2A" renders as "kmt2a".
func Segment(n name.Name) string {
	var parts []string
	for _, w := range n.Words() {
		var text name.ASCII
		switch w := w.(type) {
		case name.Lower:
			text = w.Text()
		case name.Title:
			text = w.Text().Lower()
		case name.Upper:
			text = w.Text().Lower()
		}
		parts = append(parts, splitWord(string(text))...)
	}
	return strings.Join(parts, "-")
}

func splitWord(w string) []string {
	var (
		parts []string
		cur   strings.Builder
	)
	flush := func() {
		if cur.Len() > 0 {
			parts = append(parts, cur.String())
			cur.Reset()
		}
	}

	for i := 0; i < len(w); i++ {
		c := w[i]
		switch {
		case 'a' <= c && c <= 'z', '0' <= c && c <= '9':
			cur.WriteByte(c)
		case 'A' <= c && c <= 'Z':
			cur.WriteByte(c + ('a' - 'A'))
		case c == '\'':
			// dropped
		default:
			flush()
		}
	}
	flush()
	return parts
}

// Segments renders an ancestor chain. The last segment gets ext appended.
func Segments(chain []name.Name, ext string) ([]string, error) {
	segs := make([]string, len(chain))
	for i, n := range chain {
		seg := Segment(n)
		if seg == "" {
			return nil, &EmptySegmentError{Name: n.String()}
		}
		segs[i] = seg
	}
	if len(segs) > 0 {
		segs[len(segs)-1] += ext
	}
	return segs, nil
}
