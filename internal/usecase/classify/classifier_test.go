package classify

import (
	"testing"

	"github.com/toolscout/toolscout/internal/domain/query/category"
	"github.com/toolscout/toolscout/internal/domain/query/intent"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		text string
		want bool
	}{
		{"normal query", "datadog vs newrelic", true},
		{"single char", "a", false},
		{"whitespace only", "   ", false},
		{"empty", "", false},
		{"two chars", "go", true},
		{"all special chars", "###$$$%%%", false},
		{"mostly special chars", "c++!?#", false},
		{"few special chars", "what is node.js", true},
		{"padded short", "  x  ", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Validate(tc.text); got != tc.want {
				t.Errorf("Validate(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestClassify_ComparisonWithPair(t *testing.T) {
	q := Classify("datadog vs newrelic")

	if q.Intent() != intent.Comparison {
		t.Errorf("intent: got %s, want %s", q.Intent(), intent.Comparison)
	}
	if q.Category() != category.Monitoring {
		t.Errorf("category: got %s, want %s", q.Category(), category.Monitoring)
	}

	p, ok := q.Pair()
	if !ok {
		t.Fatal("expected a comparison pair")
	}
	if p.First() != "datadog" || p.Second() != "newrelic" {
		t.Errorf("pair: got (%q, %q), want (datadog, newrelic)", p.First(), p.Second())
	}
}

func TestClassify_PairOrderPreserved(t *testing.T) {
	q := Classify("newrelic versus datadog")

	p, ok := q.Pair()
	if !ok {
		t.Fatal("expected a comparison pair")
	}
	if p.First() != "newrelic" || p.Second() != "datadog" {
		t.Errorf("pair order: got (%q, %q), want (newrelic, datadog)", p.First(), p.Second())
	}
}

func TestClassify_Alternatives(t *testing.T) {
	q := Classify("mlflow alternatives")

	if q.Intent() != intent.Alternatives {
		t.Errorf("intent: got %s, want %s", q.Intent(), intent.Alternatives)
	}
	if q.Category() != category.MachineLearning {
		t.Errorf("category: got %s, want %s", q.Category(), category.MachineLearning)
	}
	if q.Subject() != "mlflow" {
		t.Errorf("subject: got %q, want %q", q.Subject(), "mlflow")
	}
	if _, ok := q.Pair(); ok {
		t.Error("alternatives query must not carry a comparison pair")
	}
}

func TestClassify_AlternativesBeatsComparison(t *testing.T) {
	// Alternatives is evaluated before Comparison, so the "alternatives"
	// keyword wins even with "vs" present.
	q := Classify("datadog alternatives vs newrelic")

	if q.Intent() != intent.Alternatives {
		t.Errorf("intent: got %s, want %s", q.Intent(), intent.Alternatives)
	}
	if _, ok := q.Pair(); ok {
		t.Error("pair must only be extracted for comparison intent")
	}
}

func TestClassify_ComparisonWithoutPair(t *testing.T) {
	q := Classify("difference between grafana and kibana")

	if q.Intent() != intent.Comparison {
		t.Errorf("intent: got %s, want %s", q.Intent(), intent.Comparison)
	}
	if _, ok := q.Pair(); ok {
		t.Error("no vs-pair should be extracted without vs/versus")
	}
}

func TestClassify_Intents(t *testing.T) {
	cases := []struct {
		text string
		want intent.Intent
	}{
		{"jenkins features", intent.Features},
		{"terraform pricing", intent.Pricing},
		{"is sentry free", intent.Pricing},
		{"how to deploy with helm", intent.Tutorial},
		{"getting started with react", intent.Tutorial},
		{"stripe api integration", intent.Integration},
		{"some random text", intent.General},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			if got := Classify(tc.text).Intent(); got != tc.want {
				t.Errorf("intent: got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestClassify_Categories(t *testing.T) {
	cases := []struct {
		text string
		want category.Category
	}{
		{"jenkins pipelines", category.CiCd},
		{"postgresql tuning", category.Database},
		{"kubernetes operators", category.Cloud},
		{"pytorch models", category.MachineLearning},
		{"react components", category.Frontend},
		{"fastapi middleware", category.Backend},
		{"helm charts", category.DevOps},
		{"keycloak setup", category.Security},
		{"cypress runs", category.Testing},
		{"unheard of thing", category.General},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			if got := Classify(tc.text).Category(); got != tc.want {
				t.Errorf("category: got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestClassify_InvalidTextStillClassifies(t *testing.T) {
	if Validate("###$$$%%%") {
		t.Fatal("expected text to be invalid")
	}

	q := Classify("###$$$%%%")
	if q.Intent() != intent.General || q.Category() != category.General {
		t.Errorf("got %s/%s, want general/general", q.Intent(), q.Category())
	}
}

func TestClassify_SubjectStripsStoplist(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"best datadog alternatives", "datadog"},
		{"how to use terraform guide", "use terraform"},
		{"grafana review", "grafana"},
		{"alternatives", ""},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			if got := Classify(tc.text).Subject(); got != tc.want {
				t.Errorf("subject: got %q, want %q", got, tc.want)
			}
		})
	}
}
