// Package synth turns a classified query into backend-ready search
// strings via an (intent, category) template table with layered fallback.
package synth

import (
	"strings"

	"github.com/toolscout/toolscout/internal/domain/query"
	"github.com/toolscout/toolscout/internal/domain/query/category"
	"github.com/toolscout/toolscout/internal/domain/query/intent"
)

// Synthesize derives the search and article query strings for a
// classified query. Both strings pass through Optimize. Must not be
// called for text that failed validation.
func Synthesize(q query.Classified) query.Synthesized {
	return query.NewSynthesized(
		Optimize(searchQuery(q)),
		Optimize(articleQuery(q)),
	)
}

// searchQuery fills the looked-up template. When the classifier extracted
// no subject the original text is returned as-is: the escape hatch for
// queries that could not be decomposed.
func searchQuery(q query.Classified) string {
	if q.Subject() == "" {
		return q.Original()
	}

	tpl := lookupTemplate(q.Intent(), q.Category())

	if q.Intent() == intent.Comparison {
		if p, ok := q.Pair(); ok {
			filled := strings.ReplaceAll(tpl, "{tool1}", p.First())
			return strings.ReplaceAll(filled, "{tool2}", p.Second())
		}
		// Comparison intent without a vs-pair: the pair template cannot
		// be filled, so fall back to the single-subject generic template.
		tpl = genericTemplate
	}

	return strings.ReplaceAll(tpl, "{tool}", q.Subject())
}

// lookupTemplate resolves exact (intent, category), then (intent,
// General), then the generic template.
func lookupTemplate(in intent.Intent, cat category.Category) string {
	byCategory, ok := searchTemplates[in]
	if !ok {
		return genericTemplate
	}
	if tpl, ok := byCategory[cat]; ok {
		return tpl
	}
	if tpl, ok := byCategory[category.General]; ok {
		return tpl
	}
	return genericTemplate
}

// articleQuery maps intent to a suffix appended to the subject. Without a
// subject it falls back to the original text plus a generic suffix.
func articleQuery(q query.Classified) string {
	if q.Subject() == "" {
		return q.Original() + " developer tools comparison"
	}

	suffix, ok := articleSuffixes[q.Intent()]
	if !ok {
		suffix = defaultArticleSuffix
	}
	return q.Subject() + " " + suffix
}
