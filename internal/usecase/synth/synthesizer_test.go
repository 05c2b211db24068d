package synth

import (
	"testing"

	"github.com/toolscout/toolscout/internal/domain/query"
	"github.com/toolscout/toolscout/internal/domain/query/category"
	"github.com/toolscout/toolscout/internal/domain/query/intent"
)

func classified(
	original string,
	in intent.Intent,
	cat category.Category,
	subject string,
	pair *query.Pair,
) query.Classified {
	return query.New(original, in, cat, subject, pair)
}

func TestSynthesize_AlternativesExactTemplate(t *testing.T) {
	q := classified("mlflow alternatives", intent.Alternatives, category.MachineLearning, "mlflow", nil)

	s := Synthesize(q)

	want := "mlflow alternatives machine learning AI"
	if s.Search() != want {
		t.Errorf("search: got %q, want %q", s.Search(), want)
	}
	if s.Article() != "mlflow alternatives comparison best tools" {
		t.Errorf("article: got %q", s.Article())
	}
}

func TestSynthesize_ComparisonFillsPair(t *testing.T) {
	p := query.NewPair("datadog", "newrelic")
	q := classified("datadog vs newrelic", intent.Comparison, category.Monitoring, "datadog newrelic", &p)

	s := Synthesize(q)

	want := "datadog vs newrelic comparison features pricing"
	if s.Search() != want {
		t.Errorf("search: got %q, want %q", s.Search(), want)
	}
	if s.Article() != "datadog newrelic comparison review analysis" {
		t.Errorf("article: got %q", s.Article())
	}
}

func TestSynthesize_ComparisonWithoutPairFallsBackToGeneric(t *testing.T) {
	q := classified(
		"difference between grafana and kibana",
		intent.Comparison, category.Monitoring,
		"difference between grafana and kibana", nil,
	)

	s := Synthesize(q)

	// The pair template cannot be filled, so the generic single-subject
	// template is used; Optimize then drops "and".
	want := "difference between grafana kibana developer tools software"
	if s.Search() != want {
		t.Errorf("search: got %q, want %q", s.Search(), want)
	}
}

func TestSynthesize_IntentGeneralEntryFallback(t *testing.T) {
	// Tutorial has no Cloud-specific entry, so the intent's General entry
	// applies.
	q := classified("how to deploy kubernetes", intent.Tutorial, category.Cloud, "deploy kubernetes", nil)

	s := Synthesize(q)

	want := "deploy kubernetes tutorial getting started guide documentation"
	if s.Search() != want {
		t.Errorf("search: got %q, want %q", s.Search(), want)
	}
	if s.Article() != "deploy kubernetes developer tools software review" {
		t.Errorf("article: got %q", s.Article())
	}
}

func TestSynthesize_NoSubjectReturnsOriginal(t *testing.T) {
	q := classified("alternatives", intent.Alternatives, category.General, "", nil)

	s := Synthesize(q)

	if s.Search() != "alternatives" {
		t.Errorf("search: got %q, want original text", s.Search())
	}
	if s.Article() != "alternatives developer tools comparison" {
		t.Errorf("article: got %q", s.Article())
	}
}

func TestSynthesize_NeverEmpty(t *testing.T) {
	cases := []query.Classified{
		classified("x vs y", intent.Comparison, category.General, "x y", nil),
		classified("to", intent.General, category.General, "to", nil),
		classified("a b", intent.General, category.General, "a b", nil),
	}

	for _, q := range cases {
		s := Synthesize(q)
		if s.Search() == "" {
			t.Errorf("empty search query for %q", q.Original())
		}
		if s.Article() == "" {
			t.Errorf("empty article query for %q", q.Original())
		}
	}
}

func TestOptimize_RemovesStopwords(t *testing.T) {
	got := Optimize("the best tool for monitoring and logging")
	want := "best tool monitoring logging"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestOptimize_CollapsesWhitespace(t *testing.T) {
	got := Optimize("  spaced \t out   query ")
	want := "spaced out query"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestOptimize_AllStopwordsKeepsInput(t *testing.T) {
	got := Optimize("  and  the  of ")
	want := "and the of"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestOptimize_Idempotent(t *testing.T) {
	inputs := []string{
		"the best tool for monitoring",
		"and the of",
		"datadog vs newrelic comparison features pricing",
		"  spaced   out  ",
		"",
	}

	for _, in := range inputs {
		once := Optimize(in)
		twice := Optimize(once)
		if once != twice {
			t.Errorf("not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
