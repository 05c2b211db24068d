package query

import (
	"github.com/toolscout/toolscout/internal/domain/query/category"
	"github.com/toolscout/toolscout/internal/domain/query/intent"
)

// Pair holds two comparison subjects in the order they appear in the query.
type Pair struct {
	first  string
	second string
}

// NewPair creates a comparison pair.
func NewPair(first, second string) Pair {
	return Pair{first: first, second: second}
}

// First returns the left-hand comparison subject.
func (p Pair) First() string { return p.first }

// Second returns the right-hand comparison subject.
func (p Pair) Second() string { return p.second }

// Classified is an immutable classification of a raw query.
type Classified struct {
	original string
	intent   intent.Intent
	category category.Category
	subject  string
	pair     *Pair
}

// New creates a classified query. An empty subject means the classifier
// could not extract one. A comparison pair is only retained when the
// intent is Comparison, so the pair-iff-comparison invariant holds by
// construction.
func New(
	original string,
	in intent.Intent,
	cat category.Category,
	subject string,
	pair *Pair,
) Classified {
	if in != intent.Comparison {
		pair = nil
	}
	var p *Pair
	if pair != nil {
		cp := *pair
		p = &cp
	}
	return Classified{
		original: original,
		intent:   in,
		category: cat,
		subject:  subject,
		pair:     p,
	}
}

// Original returns the raw query text.
func (c Classified) Original() string { return c.original }

// Intent returns the classified query intent.
func (c Classified) Intent() intent.Intent { return c.intent }

// Category returns the classified tool category.
func (c Classified) Category() category.Category { return c.category }

// Subject returns the extracted subject, empty when none was found.
func (c Classified) Subject() string { return c.subject }

// Pair returns the comparison pair and whether one was extracted.
func (c Classified) Pair() (Pair, bool) {
	if c.pair == nil {
		return Pair{}, false
	}
	return *c.pair, true
}

// Synthesized holds the backend-ready query strings derived from a
// classified query.
type Synthesized struct {
	search  string
	article string
}

// NewSynthesized creates a synthesized query pair.
func NewSynthesized(search, article string) Synthesized {
	return Synthesized{search: search, article: article}
}

// Search returns the web-search query string.
func (s Synthesized) Search() string { return s.search }

// Article returns the article-oriented query string.
func (s Synthesized) Article() string { return s.article }
