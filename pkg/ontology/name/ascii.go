package name

import (
	"strings"
	"unicode/utf8"
)

// ASCII is a string verified to contain only ASCII characters.
type ASCII string

// NewASCII returns s as an ASCII string, or false if any byte of s is
// outside the ASCII range.
func NewASCII(s string) (ASCII, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return "", false
		}
	}
	return ASCII(s), true
}

// Lower converts the string to lowercase.
func (a ASCII) Lower() ASCII {
	b := []byte(a)
	for i, c := range b {
		b[i] = toLower(c)
	}
	return ASCII(b)
}

// Upper converts the string to uppercase.
func (a ASCII) Upper() ASCII {
	b := []byte(a)
	for i, c := range b {
		b[i] = toUpper(c)
	}
	return ASCII(b)
}

// Title converts the string to title case: the first character and every
// character following a '/' are uppercased, everything else is lowercased.
// The replacement table is applied to the result.
func (a ASCII) Title() ASCII {
	b := []byte(a)
	upperNext := true
	for i, c := range b {
		if upperNext {
			b[i] = toUpper(c)
		} else {
			b[i] = toLower(c)
		}
		upperNext = c == '/'
	}

	out := string(b)
	for _, r := range titleReplacements {
		out = strings.ReplaceAll(out, r.from, r.to)
	}
	return ASCII(out)
}

func toLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func toUpper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
