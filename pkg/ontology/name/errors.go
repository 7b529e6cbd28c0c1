package name

import (
	"fmt"
	"strings"

	"github.com/cognicore/ecc/pkg/ontology/internalerr"
)

// NonASCIIWordsError lists every token of a name containing non-ASCII
// characters.
type NonASCIIWordsError struct {
	Words []string
}

func (e *NonASCIIWordsError) Error() string {
	return "some words include non-ASCII characters: " + strings.Join(e.Words, ", ")
}

func (e *NonASCIIWordsError) Unwrap() error { return internalerr.ErrInvalidInput }

// IncorrectCaseError describes a single word with the wrong casing.
type IncorrectCaseError struct {
	Found    string
	Expected string
	Reason   string
}

func (e *IncorrectCaseError) Error() string {
	return fmt.Sprintf("found `%s` but expected `%s` because %s", e.Found, e.Expected, e.Reason)
}

// IncorrectlyCasedWordsError lists every incorrectly cased word of a name.
type IncorrectlyCasedWordsError struct {
	Words []*IncorrectCaseError
}

func (e *IncorrectlyCasedWordsError) Error() string {
	issues := make([]string, len(e.Words))
	for i, w := range e.Words {
		issues[i] = w.Error()
	}
	return "some words are incorrectly cased:\n\n* " + strings.Join(issues, "\n* ")
}

func (e *IncorrectlyCasedWordsError) Unwrap() error { return internalerr.ErrInvalidInput }
