package name

// Word is one cased token of a Name. The set of implementations is closed:
// Lower, Title and Upper. Consumers are expected to type-switch over all
// three.
type Word interface {
	Text() ASCII
	String() string
	cased()
}

// Lower is a word from the lowercase list.
type Lower ASCII

// Title is a title-cased word.
type Title ASCII

// Upper is a fully uppercase word (acronyms, gene symbols, codes).
type Upper ASCII

func (w Lower) Text() ASCII    { return ASCII(w) }
func (w Lower) String() string { return string(w) }
func (Lower) cased()           {}

func (w Title) Text() ASCII    { return ASCII(w) }
func (w Title) String() string { return string(w) }
func (Title) cased()           {}

func (w Upper) Text() ASCII    { return ASCII(w) }
func (w Upper) String() string { return string(w) }
func (Upper) cased()           {}

const (
	reasonLowercaseList = "the word is in the lowercase list"
	reasonTitleCase     = "the word is neither in the lowercase list nor is fully uppercase"
)

// classify assigns a case to w, or reports how w should have been written.
func classify(w ASCII) (Word, *IncorrectCaseError) {
	lower := w.Lower()
	if isLowercaseWord(string(lower)) {
		if lower == w {
			return Lower(w), nil
		}
		return nil, &IncorrectCaseError{
			Found:    string(w),
			Expected: string(lower),
			Reason:   reasonLowercaseList,
		}
	}

	if w.Upper() == w {
		return Upper(w), nil
	}

	title := w.Title()
	if title == w {
		return Title(w), nil
	}
	return nil, &IncorrectCaseError{
		Found:    string(w),
		Expected: string(title),
		Reason:   reasonTitleCase,
	}
}
