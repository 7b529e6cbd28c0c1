package name

// lowercaseWords are the only words allowed (and required) to be lowercase.
var lowercaseWords = [...]string{
	"and",
	"like",
	"the",
	"of",
	"or",
	"with",
}

// titleReplacements are applied, in order, to the result of the title-case
// transform. They cover surnames embedded in compound terms (Non-Hodgkin,
// Epstein-Barr) and nomenclature that breaks title casing on purpose.
var titleReplacements = [...]struct {
	from string
	to   string
}{
	{"hodgkin", "Hodgkin"},
	{"barr", "Barr"},
	{"dorfman", "Dorfman"},
	{"leydig", "Leydig"},
	// Intrachromosomal amplification of chromosome 21.
	{"Iamp21", "iAMP21"},
}

func isLowercaseWord(w string) bool {
	for _, lw := range lowercaseWords {
		if lw == w {
			return true
		}
	}
	return false
}

// LowercaseWords returns a copy of the words that must stay lowercase.
func LowercaseWords() []string {
	out := make([]string, len(lowercaseWords))
	copy(out, lowercaseWords[:])
	return out
}
