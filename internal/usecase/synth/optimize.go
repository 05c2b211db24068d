package synth

import "strings"

// stopwords are removed from synthesized queries by exact token match.
// Stripping happens after template fill, never before: doing it earlier
// could erase a meaningful one-word subject. A tool literally named "to"
// or "by" is still erased here; that matches the upstream behavior.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "the": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
	"with": {}, "by": {},
}

// Optimize collapses runs of whitespace and removes stopwords
// case-insensitively. It is idempotent, and it never returns an empty
// string for non-empty input: if every token is a stopword the
// whitespace-collapsed input is returned instead.
func Optimize(q string) string {
	words := strings.Fields(q)
	collapsed := strings.Join(words, " ")

	kept := make([]string, 0, len(words))
	for _, w := range words {
		if _, stop := stopwords[strings.ToLower(w)]; !stop {
			kept = append(kept, w)
		}
	}

	if len(kept) == 0 {
		return collapsed
	}
	return strings.Join(kept, " ")
}
