package synth

import (
	"github.com/toolscout/toolscout/internal/domain/query/category"
	"github.com/toolscout/toolscout/internal/domain/query/intent"
)

// genericTemplate is the last-resort search template; together with the
// per-intent general entries it guarantees a template always exists.
const genericTemplate = "{tool} developer tools software"

// searchTemplates maps (intent, category) to a search query template.
// Lookup order: exact entry, then the intent's General entry, then
// genericTemplate.
var searchTemplates = map[intent.Intent]map[category.Category]string{
	intent.Alternatives: {
		category.Monitoring:      "{tool} alternatives monitoring logging observability",
		category.CiCd:            "{tool} alternatives CI CD pipeline deployment",
		category.Database:        "{tool} alternatives database management",
		category.Cloud:           "{tool} alternatives cloud infrastructure",
		category.MachineLearning: "{tool} alternatives machine learning AI",
		category.Frontend:        "{tool} alternatives frontend framework UI",
		category.Backend:         "{tool} alternatives backend API framework",
		category.DevOps:          "{tool} alternatives devops deployment",
		category.Security:        "{tool} alternatives security authentication",
		category.Testing:         "{tool} alternatives testing framework",
		category.General:         "{tool} alternatives similar tools",
	},
	intent.Comparison: {
		category.General: "{tool1} vs {tool2} comparison features pricing",
	},
	intent.Features: {
		category.General: "{tool} features capabilities documentation",
	},
	intent.Pricing: {
		category.General: "{tool} pricing cost plans pricing model",
	},
	intent.Tutorial: {
		category.General: "{tool} tutorial getting started guide documentation",
	},
	intent.Integration: {
		category.General: "{tool} integration API SDK documentation",
	},
	intent.General: {
		category.General: genericTemplate,
	},
}

// defaultArticleSuffix is appended to the subject for intents without a
// dedicated article suffix.
const defaultArticleSuffix = "developer tools software review"

// articleSuffixes maps intent to the phrase appended to the subject for
// article-oriented queries.
var articleSuffixes = map[intent.Intent]string{
	intent.Alternatives: "alternatives comparison best tools",
	intent.Comparison:   "comparison review analysis",
	intent.Features:     "features capabilities review",
	intent.Pricing:      "pricing cost analysis",
}
