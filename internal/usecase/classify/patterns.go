package classify

import (
	"regexp"

	"github.com/toolscout/toolscout/internal/domain/query/category"
	"github.com/toolscout/toolscout/internal/domain/query/intent"
)

// intentGroup is one entry in the ordered intent classification table.
type intentGroup struct {
	intent   intent.Intent
	patterns []*regexp.Regexp
}

// categoryGroup is one entry in the ordered category classification table.
type categoryGroup struct {
	category category.Category
	patterns []*regexp.Regexp
}

func compile(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}

// intentGroups is evaluated in order; the first group with any matching
// pattern wins. Alternatives precedes Comparison, so a query containing
// both "alternatives" and "vs" resolves to Alternatives while a bare
// "x vs y" resolves to Comparison.
var intentGroups = []intentGroup{
	{intent.Alternatives, compile(
		`\b(alternatives?|replacement|substitute|instead of|similar to)\b`,
		`\bother\b.*\btools?\b`,
	)},
	{intent.Comparison, compile(
		`\bcompare\b`,
		`\bvs\b|\bversus\b`,
		`\bdifference\b`,
		`\bwhich.*better\b`,
	)},
	{intent.Features, compile(
		`\bfeatures?\b`,
		`\bcapabilities?\b`,
		`\bwhat.*can.*do\b`,
		`\bfunctionality\b`,
	)},
	{intent.Pricing, compile(
		`\bpricing\b`,
		`\bcost\b`,
		`\bprice\b`,
		`\bfree\b`,
		`\bpaid\b`,
	)},
	{intent.Tutorial, compile(
		`\btutorial\b`,
		`\bhow.*to\b`,
		`\bguide\b`,
		`\bgetting.*started\b`,
	)},
	{intent.Integration, compile(
		`\bintegration\b`,
		`\bapi\b`,
		`\bsdk\b`,
		`\bconnect\b`,
	)},
}

// categoryGroups is evaluated in order; the first group with any matching
// keyword wins. Keywords name well-known technologies per category.
var categoryGroups = []categoryGroup{
	{category.Monitoring, compile(
		`\bmonitoring\b`, `\blogging\b`, `\banalytics\b`, `\bobservability\b`,
		`\bdatadog\b`, `\bnewrelic\b`, `\bgrafana\b`, `\bprometheus\b`,
	)},
	{category.CiCd, compile(
		`\bci\b`, `\bcd\b`, `\bcontinuous\b`, `\bdeployment\b`, `\bjenkins\b`,
		`\bgithub.*actions\b`, `\bgitlab\b`, `\bcircleci\b`, `\btravis\b`,
	)},
	{category.Database, compile(
		`\bdatabase\b`, `\bpostgresql\b`, `\bmysql\b`, `\bmongodb\b`,
		`\bredis\b`, `\belasticsearch\b`, `\bclickhouse\b`,
	)},
	{category.Cloud, compile(
		`\baws\b`, `\bazure\b`, `\bgcp\b`, `\bcloud\b`, `\bkubernetes\b`,
		`\bdocker\b`, `\bterraform\b`, `\bansible\b`,
	)},
	{category.MachineLearning, compile(
		`\bml\b`, `\bmachine.*learning\b`, `\bai\b`, `\bartificial.*intelligence\b`,
		`\btensorflow\b`, `\bpytorch\b`, `\bscikit.*learn\b`, `\bmlflow\b`,
	)},
	{category.Frontend, compile(
		`\bfrontend\b`, `\breact\b`, `\bvue\b`, `\bangular\b`, `\bui\b`,
		`\bux\b`, `\bdesign\b`, `\bcomponent\b`,
	)},
	{category.Backend, compile(
		`\bbackend\b`, `\bapi\b`, `\bserver\b`, `\bnode\b`, `\bdjango\b`,
		`\bflask\b`, `\bfastapi\b`, `\bspring\b`,
	)},
	{category.DevOps, compile(
		`\bdevops\b`, `\bdeployment\b`, `\borchestration\b`, `\bcontainer\b`,
		`\bkubernetes\b`, `\bdocker\b`, `\bhelm\b`,
	)},
	{category.Security, compile(
		`\bsecurity\b`, `\bauthentication\b`, `\bauthorization\b`, `\bencryption\b`,
		`\bvault\b`, `\bkeycloak\b`, `\boauth\b`,
	)},
	{category.Testing, compile(
		`\btesting\b`, `\btest\b`, `\bqa\b`, `\bquality\b`, `\bcypress\b`,
		`\bselenium\b`, `\bjest\b`, `\bpytest\b`,
	)},
}
