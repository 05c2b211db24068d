package retrieval

import (
	"net/url"
	"sort"
	"strings"

	"github.com/toolscout/toolscout/internal/domain/hit"
	"github.com/toolscout/toolscout/internal/domain/search/result"
)

// maxScore caps the additive relevance score.
const maxScore = 1.0

// merge deduplicates primary and secondary hits by normalized URL,
// scores the survivors, and orders them by descending score with the
// original position as tie-break (lower position wins). Primary hits are
// inserted first, so on a duplicate URL the primary hit survives.
func merge(primary, secondary []hit.Hit, limit int) []result.Document {
	type entry struct {
		h           hit.Hit
		fromPrimary bool
	}

	seen := make(map[string]struct{}, len(primary)+len(secondary))
	entries := make([]entry, 0, len(primary)+len(secondary))

	add := func(hits []hit.Hit, fromPrimary bool) {
		for _, h := range hits {
			key := normalizeURL(h.URL())
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			entries = append(entries, entry{h: h, fromPrimary: fromPrimary})
		}
	}
	add(primary, true)
	add(secondary, false)

	docs := make([]result.Document, 0, len(entries))
	for _, e := range entries {
		docs = append(docs, result.New(e.h, score(e.h, e.fromPrimary)))
	}

	sort.SliceStable(docs, func(i, j int) bool {
		if docs[i].Score() != docs[j].Score() {
			return docs[i].Score() > docs[j].Score()
		}
		return docs[i].Hit().Position() < docs[j].Hit().Position()
	})

	if limit >= 0 && len(docs) > limit {
		docs = docs[:limit]
	}
	return docs
}

// score computes the additive relevance score for a hit, capped at 1.0:
// early position, primary source, longer body, and a reasonable title
// length each add weight.
func score(h hit.Hit, fromPrimary bool) float64 {
	var s float64

	switch {
	case h.Position() <= 3:
		s += 0.3
	case h.Position() <= 5:
		s += 0.2
	default:
		s += 0.1
	}

	if fromPrimary {
		s += 0.2
	}

	switch body := len(h.Body()); {
	case body > 500:
		s += 0.3
	case body > 200:
		s += 0.2
	default:
		s += 0.1
	}

	if l := len(h.Title()); l >= 10 && l <= 100 {
		s += 0.2
	} else {
		s += 0.1
	}

	if s > maxScore {
		s = maxScore
	}
	return s
}

// normalizeURL lower-cases scheme, host, and path and strips the trailing
// slash so hits differing only in case or a trailing slash deduplicate.
// Query strings are kept verbatim. Unparseable URLs fall back to plain
// lower-casing.
func normalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return strings.TrimSuffix(strings.ToLower(raw), "/")
	}

	normalized := strings.ToLower(u.Scheme) + "://" + strings.ToLower(u.Host) +
		strings.TrimSuffix(strings.ToLower(u.Path), "/")
	if u.RawQuery != "" {
		normalized += "?" + u.RawQuery
	}
	return normalized
}
