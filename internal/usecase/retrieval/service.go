// Package retrieval orchestrates multi-source search: it classifies the
// query, synthesizes backend-specific search strings, fetches from the
// configured sources with per-source failure isolation, and merges the
// raw hits into a ranked, deduplicated result set.
package retrieval

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/toolscout/toolscout/internal/domain"
	"github.com/toolscout/toolscout/internal/domain/hit"
	"github.com/toolscout/toolscout/internal/domain/query/category"
	"github.com/toolscout/toolscout/internal/domain/query/intent"
	"github.com/toolscout/toolscout/internal/domain/search/result"
	"github.com/toolscout/toolscout/internal/usecase/classify"
	"github.com/toolscout/toolscout/internal/usecase/synth"
)

// minPrimaryHits is the primary result count below which the secondary
// source is consulted as well.
const minPrimaryHits = 3

// Service coordinates classification, synthesis, and source fan-out.
type Service struct {
	primary   Source
	secondary Source
	timeout   time.Duration
	logger    *zap.Logger
}

// New creates a retrieval service. secondary may be nil, which degrades
// retrieval to single-source mode. timeout bounds each source call.
func New(primary, secondary Source, timeout time.Duration, logger *zap.Logger) *Service {
	return &Service{
		primary:   primary,
		secondary: secondary,
		timeout:   timeout,
		logger:    logger,
	}
}

// Analysis describes how a raw query was understood. Diagnostic surface
// only; it reports validity as data instead of failing.
type Analysis struct {
	Query              string
	Intent             intent.Intent
	Category           category.Category
	Subject            string
	ComparisonSubjects []string
	SearchQuery        string
	ArticleQuery       string
	Valid              bool
}

// Analyze classifies and synthesizes text without dispatching a search.
func (s *Service) Analyze(text string) Analysis {
	q := classify.Classify(text)
	queries := synth.Synthesize(q)

	a := Analysis{
		Query:        text,
		Intent:       q.Intent(),
		Category:     q.Category(),
		Subject:      q.Subject(),
		SearchQuery:  queries.Search(),
		ArticleQuery: queries.Article(),
		Valid:        classify.Validate(text),
	}
	if p, ok := q.Pair(); ok {
		a.ComparisonSubjects = []string{p.First(), p.Second()}
	}
	return a
}

// Retrieve classifies text, fetches raw hits from the selected sources,
// and returns the merged, ranked, deduplicated documents, at most limit.
//
// Invalid text yields domain.ErrInvalidQuery. Source failures degrade to
// fewer (possibly zero) hits: when every source fails the result is
// empty, not an error, so callers choose their own fallback.
func (s *Service) Retrieve(ctx context.Context, text string, limit int) ([]result.Document, error) {
	if !classify.Validate(text) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidQuery, text)
	}

	q := classify.Classify(text)
	queries := synth.Synthesize(q)
	searchQuery := queries.Search()

	s.logger.Debug("retrieving",
		zap.String("query", text),
		zap.String("search_query", searchQuery),
		zap.String("intent", string(q.Intent())),
		zap.String("category", string(q.Category())),
	)

	// Alternatives and comparison queries always consult both sources, so
	// those calls run in parallel. Each call carries its own timeout and
	// cancelling one never cancels the other.
	bothUpfront := s.secondary != nil &&
		(q.Intent() == intent.Alternatives || q.Intent() == intent.Comparison)

	var primaryHits, secondaryHits []hit.Hit
	if bothUpfront {
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			primaryHits = s.fetch(ctx, s.primary, searchQuery, limit)
		}()
		go func() {
			defer wg.Done()
			secondaryHits = s.fetch(ctx, s.secondary, searchQuery, limit)
		}()
		wg.Wait()
	} else {
		primaryHits = s.fetch(ctx, s.primary, searchQuery, limit)
		if s.secondary != nil && len(primaryHits) < minPrimaryHits {
			secondaryHits = s.fetch(ctx, s.secondary, searchQuery, limit)
		}
	}

	docs := merge(primaryHits, secondaryHits, limit)

	s.logger.Info("retrieval completed",
		zap.String("query", text),
		zap.Int("primary_hits", len(primaryHits)),
		zap.Int("secondary_hits", len(secondaryHits)),
		zap.Int("results", len(docs)),
	)

	return docs, nil
}

// fetch runs one isolated source call. A failure is logged and reported
// as zero hits so one backend can never abort the other or the request.
func (s *Service) fetch(ctx context.Context, src Source, query string, limit int) []hit.Hit {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	hits, err := src.Fetch(ctx, query, limit)
	if err != nil {
		s.logger.Warn("source fetch failed",
			zap.String("source", src.Name()),
			zap.String("query", query),
			zap.Error(err),
		)
		return nil
	}
	return hits
}
