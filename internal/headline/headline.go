// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package headline derives the human-readable layer of a case record:
// a status-appropriate headline phrase and, for ruling-like events, a
// short guidance takeaway. A small override table supplies hand-authored
// narratives for named high-value cases before the generic rules run.
package headline

import (
	"regexp"
	"strings"

	"github.com/pdiddy/case-tracker/pkg/types"
)

type phraseRule struct {
	phrase  string
	pattern *regexp.Regexp
}

func re(expr string) *regexp.Regexp { return regexp.MustCompile(`(?i)` + expr) }

// suffixRules pick the headline phrase for the detected event, first
// match wins. No match means the headline is the bare caption.
var suffixRules = []phraseRule{
	{"rules AI training fair use", re(`\bfair\s+use\b.*\b(?:summary\s+judgment|judgment)\b`)},
	{"issues injunction related to AI use", re(`\binjunction\b`)},
	{"dismisses AI/IP claims", re(`\bdismiss`)},
	{"announces settlement in AI/IP dispute", re(`\bsettle`)},
	{"certifies class in AI/IP case", re(`\bclass\s+cert`)},
	{"returns verdict in AI/IP case", re(`\bverdict\b`)},
}

// Headline returns the caption suffixed with a phrase describing the
// detected event, or the bare caption when no rule matches.
func Headline(text, caption string) string {
	for _, r := range suffixRules {
		if r.pattern.MatchString(text) {
			return caption + " – " + r.phrase + "."
		}
	}
	return caption
}

// Override pins a fixed, hand-authored narrative to a case, keyed by a
// case-insensitive substring match against the compressed caption.
// Overrides are consulted before the generic takeaway rules so that
// maintaining the narratives never touches classification logic.
type Override struct {
	Match string
	Text  string
}

// DefaultOverrides covers the two landmark fair-use judgments whose
// nuances the generic rules flatten.
var DefaultOverrides = []Override{
	{
		Match: "Anthropic",
		Text: "Training on lawfully acquired books was ruled transformative fair use, " +
			"but retaining a permanent library of pirated copies was not, and the " +
			"settlement that followed priced that exposure. Audit dataset provenance " +
			"before leaning on the fair-use holding.",
	},
	{
		Match: "Meta Platforms",
		Text: "Summary judgment for Meta turned on the plaintiffs' failure to prove " +
			"market harm, not on a blanket blessing of AI training. The court all but " +
			"invited a market-dilution record; build one.",
	},
}

type takeawayRule struct {
	text     string
	patterns []*regexp.Regexp
}

// takeawayRules generate guidance for rulings the override table does
// not cover. Written for rights-holder catalogs (the tracker's
// audience); first match wins.
var takeawayRules = []takeawayRule{
	{
		"Even if training is ruled fair use, acquisition of pirated datasets can still " +
			"create liability. Scrutinize provenance of training corpora and any scraping " +
			"of leaked files.",
		[]*regexp.Regexp{re(`\bfair\s+use\b`), re(`\b(?:pirated|torrent|unauthorized|shadow\s+librar)`)},
	},
	{
		"Courts weigh harm to the market for the original works more than any separate " +
			"training-license market. Document concrete substitution and licensing " +
			"displacement on your catalog.",
		[]*regexp.Regexp{re(`\bfair\s+use\b`), re(`\bmarket\b`)},
	},
	{
		"Injunctions can limit model distribution or future retraining. Leverage for " +
			"prospective relief and guardrails on content ingestion.",
		[]*regexp.Regexp{re(`\binjunction\b`)},
	},
	{
		"Complaints that don't connect copying to cognizable market harm risk dismissal. " +
			"Tie training and outputs to measurable revenue impact and licensing loss.",
		[]*regexp.Regexp{re(`\bdismiss`)},
	},
	{
		"Settlements set practical ranges for training and output licenses even without " +
			"merits rulings. Useful as negotiation benchmarks.",
		[]*regexp.Regexp{re(`\bsettle`)},
	},
	{
		"Damages frameworks and apportionment will shape payouts for protected works in " +
			"AI contexts.",
		[]*regexp.Regexp{re(`\bverdict\b`)},
	},
}

// Generator produces takeaways. Safe for concurrent use.
type Generator struct {
	overrides []Override
}

// NewGenerator builds a Generator with the given override table; nil
// selects DefaultOverrides.
func NewGenerator(overrides []Override) *Generator {
	if overrides == nil {
		overrides = DefaultOverrides
	}
	return &Generator{overrides: overrides}
}

// Takeaway returns guidance text for the case, or empty when the status
// is not ruling-like: a case that is merely open or newly filed has no
// ruling to draw guidance from.
func (g *Generator) Takeaway(caption string, status types.CaseStatus, text string) string {
	if !types.RulingStatuses[status] {
		return ""
	}
	for _, o := range g.overrides {
		if o.Match != "" && containsFold(caption, o.Match) {
			return o.Text
		}
	}
	for _, r := range takeawayRules {
		if matchAll(r.patterns, text) {
			return r.text
		}
	}
	return ""
}

func matchAll(patterns []*regexp.Regexp, text string) bool {
	for _, p := range patterns {
		if !p.MatchString(text) {
			return false
		}
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
