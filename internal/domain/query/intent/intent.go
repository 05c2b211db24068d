package intent

// Intent is the purpose behind a query.
type Intent string

// Intent constants. The classifier evaluates pattern groups in this order;
// General is the fallback when nothing matches.
const (
	Alternatives Intent = "alternatives"
	Comparison   Intent = "comparison"
	Features     Intent = "features"
	Pricing      Intent = "pricing"
	Tutorial     Intent = "tutorial"
	Integration  Intent = "integration"
	General      Intent = "general"
)

// IsValid checks if the intent is one of the supported values.
func (i Intent) IsValid() bool {
	switch i {
	case Alternatives, Comparison, Features, Pricing, Tutorial, Integration, General:
		return true
	}
	return false
}
