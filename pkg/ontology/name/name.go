// Package name parses and validates ontology node names.
//
// A name is split into whitespace-delimited words after removing commas and
// semicolons. Every word must be ASCII and must follow the casing policy:
// words from a short lowercase list stay lowercase, fully uppercase words are
// kept verbatim, and everything else must be title case. Violations are
// collected for the whole name rather than reported one at a time.
package name

import (
	"strings"
)

// stripped characters are removed before a name is split into words.
const stripped = ",;"

// Name is a validated node name. The zero value is the empty name, which
// marks the parent of the root node.
type Name struct {
	raw   string
	words []Word
}

// Parse validates raw and returns the resulting Name. The error is a
// *NonASCIIWordsError or *IncorrectlyCasedWordsError.
func Parse(raw string) (Name, error) {
	tokens := strings.Fields(Strip(raw))

	var nonASCII []string
	ascii := make([]ASCII, 0, len(tokens))
	for _, tok := range tokens {
		a, ok := NewASCII(tok)
		if !ok {
			nonASCII = append(nonASCII, tok)
			continue
		}
		ascii = append(ascii, a)
	}
	if len(nonASCII) > 0 {
		return Name{}, &NonASCIIWordsError{Words: nonASCII}
	}

	var findings []*IncorrectCaseError
	words := make([]Word, 0, len(ascii))
	for _, a := range ascii {
		w, finding := classify(a)
		if finding != nil {
			findings = append(findings, finding)
			continue
		}
		words = append(words, w)
	}
	if len(findings) > 0 {
		return Name{}, &IncorrectlyCasedWordsError{Words: findings}
	}

	return Name{raw: raw, words: words}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(raw string) Name {
	n, err := Parse(raw)
	if err != nil {
		panic("name: " + err.Error())
	}
	return n
}

// Strip removes the characters that never take part in a word.
func Strip(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(stripped, r) {
			return -1
		}
		return r
	}, s)
}

// String returns the name as originally written.
func (n Name) String() string { return n.raw }

// IsEmpty reports whether this is the empty name.
func (n Name) IsEmpty() bool { return n.raw == "" }

// Equal compares names by their original text.
func (n Name) Equal(other Name) bool { return n.raw == other.raw }

// Words returns the cased words of the name.
func (n Name) Words() []Word {
	out := make([]Word, len(n.words))
	copy(out, n.words)
	return out
}

// MarshalText implements encoding.TextMarshaler.
func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.raw), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is validated
// with Parse.
func (n *Name) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
