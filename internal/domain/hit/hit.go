package hit

// Source tags which search backend produced a hit.
type Source string

// Source constants.
const (
	// Firecrawl is the primary content-rich search backend.
	Firecrawl Source = "firecrawl"
	// Serper is the secondary web search backend.
	Serper Source = "serper"
)

// IsValid checks if the source is one of the supported values.
func (s Source) IsValid() bool {
	return s == Firecrawl || s == Serper
}

// Hit is a single raw result item from one backend, pre-ranking.
type Hit struct {
	title    string
	url      string
	body     string
	source   Source
	position int
}

// New creates a hit. position is 1-based within the backend's result list.
func New(title, url, body string, source Source, position int) Hit {
	return Hit{
		title:    title,
		url:      url,
		body:     body,
		source:   source,
		position: position,
	}
}

// Title returns the result title.
func (h Hit) Title() string { return h.title }

// URL returns the result URL.
func (h Hit) URL() string { return h.url }

// Body returns the result snippet or scraped content.
func (h Hit) Body() string { return h.body }

// Source returns the originating backend.
func (h Hit) Source() Source { return h.source }

// Position returns the 1-based rank within the backend's result list.
func (h Hit) Position() int { return h.position }
