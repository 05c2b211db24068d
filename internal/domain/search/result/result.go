package result

import "github.com/toolscout/toolscout/internal/domain/hit"

// Document is a raw hit annotated with a computed relevance score.
type Document struct {
	hit   hit.Hit
	score float64
}

// New creates a ranked document. score is in [0.0, 1.0].
func New(h hit.Hit, score float64) Document {
	return Document{hit: h, score: score}
}

// Hit returns the underlying raw hit.
func (d *Document) Hit() hit.Hit { return d.hit }

// Score returns the relevance score.
func (d *Document) Score() float64 { return d.score }
