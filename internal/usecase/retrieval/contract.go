package retrieval

import (
	"context"

	"github.com/toolscout/toolscout/internal/domain/hit"
)

// Source is a search backend able to fetch raw hits for a query string.
// Implementations must treat the context's deadline as the call budget
// and return at most limit hits with 1-based positions.
type Source interface {
	Name() string
	Fetch(ctx context.Context, query string, limit int) ([]hit.Hit, error)
}
