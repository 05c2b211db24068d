package domain

import "errors"

var (
	// ErrInvalidQuery signals malformed raw query text. It is the only
	// error the retrieval surface propagates to callers.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrSourceUnavailable signals a search backend failure. The
	// orchestrator recovers from it locally; it never reaches callers.
	ErrSourceUnavailable = errors.New("search source unavailable")
)
