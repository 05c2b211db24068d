// Package classify maps raw query text to an intent and a tool category
// via ordered pattern tables, and extracts the query subject(s).
package classify

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/toolscout/toolscout/internal/domain/query"
	"github.com/toolscout/toolscout/internal/domain/query/category"
	"github.com/toolscout/toolscout/internal/domain/query/intent"
)

// maxSpecialRatio is the highest tolerated share of non-alphanumeric,
// non-whitespace characters in a query.
const maxSpecialRatio = 0.3

var (
	// stoplistPattern strips classification keywords before subject
	// extraction.
	stoplistPattern = regexp.MustCompile(
		`\b(alternatives?|vs|versus|compare|features?|pricing|tutorial|guide|how|to|best|top|review)\b`)

	whitespacePattern = regexp.MustCompile(`\s+`)

	// pairPattern captures "<phrase> vs <phrase>" with phrases in the
	// order they appear.
	pairPattern = regexp.MustCompile(`(?i)(\w+(?:\s+\w+)*)\s+(?:vs|versus)\s+(\w+(?:\s+\w+)*)`)
)

// Validate reports whether text is well-formed enough to dispatch.
// Text is invalid when its trimmed length is under 2 characters or more
// than 30% of its characters are punctuation.
func Validate(text string) bool {
	if len(strings.TrimSpace(text)) < 2 {
		return false
	}

	runes := []rune(text)
	special := 0
	for _, r := range runes {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			continue
		}
		special++
	}
	return float64(special)/float64(len(runes)) <= maxSpecialRatio
}

// Classify maps text to a classified query. It always produces a result,
// falling back to General/General; callers that dispatch searches must
// check Validate first.
func Classify(text string) query.Classified {
	lower := strings.ToLower(text)

	in := intent.General
	for _, g := range intentGroups {
		if matchesAny(g.patterns, lower) {
			in = g.intent
			break
		}
	}

	cat := category.General
	for _, g := range categoryGroups {
		if matchesAny(g.patterns, lower) {
			cat = g.category
			break
		}
	}

	var pair *query.Pair
	if in == intent.Comparison {
		if p, ok := extractPair(text); ok {
			pair = &p
		}
	}

	return query.New(text, in, cat, extractSubject(lower), pair)
}

func matchesAny(patterns []*regexp.Regexp, lower string) bool {
	for _, p := range patterns {
		if p.MatchString(lower) {
			return true
		}
	}
	return false
}

// extractSubject strips the stoplist from the lower-cased text, collapses
// whitespace, and trims. An empty result means no subject.
func extractSubject(lower string) string {
	cleaned := stoplistPattern.ReplaceAllString(lower, "")
	cleaned = whitespacePattern.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// extractPair captures the two phrases around "vs"/"versus". A missing
// pair is a valid outcome even for comparison intent ("difference between
// x and y" has comparison intent but no vs-pair).
func extractPair(text string) (query.Pair, bool) {
	m := pairPattern.FindStringSubmatch(text)
	if m == nil {
		return query.Pair{}, false
	}
	return query.NewPair(strings.TrimSpace(m[1]), strings.TrimSpace(m[2])), true
}
