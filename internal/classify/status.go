// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"regexp"

	"github.com/pdiddy/case-tracker/pkg/types"
)

// rule pairs a label with the patterns that assert it. Every pattern
// must match for the rule to fire. Rules live in explicit priority
// order and are evaluated by firstMatch: context text often contains
// several keyword hits at once, and the list order decides which wins.
type rule[L ~string] struct {
	label    L
	patterns []*regexp.Regexp
}

func re(expr string) *regexp.Regexp { return regexp.MustCompile(`(?i)` + expr) }

// statusRules maps context text to the coarse lifecycle bucket.
// Class certification outranks judgment: a certification order is
// routinely described alongside summary-judgment briefing, and the
// certification is the newer event.
var statusRules = []rule[types.CaseStatus]{
	{types.StatusClassCertified, []*regexp.Regexp{re(`\b(?:class\s+certification|certif(?:y|ied|ies)\s+(?:a\s+|the\s+)?class)\b`)}},
	{types.StatusJudgment, []*regexp.Regexp{re(`\b(?:summary\s+judgment|judgment\s+entered|granted\s+summary|verdict)\b`)}},
	{types.StatusInjunction, []*regexp.Regexp{re(`\b(?:(?:preliminary|permanent)\s+)?injunction\b`)}},
	{types.StatusDismissed, []*regexp.Regexp{re(`\b(?:dismiss\w*|with\s+prejudice|without\s+prejudice)\b`)}},
	{types.StatusSettled, []*regexp.Regexp{re(`\bsettle(?:d|s|ment|ments)?\b`)}},
	{types.StatusRecentlyFiled, []*regexp.Regexp{re(`\b(?:complaint\s+filed|filed\s+on|new\s+case|recently\s+filed)\b`)}},
}

// outcomeRules maps context text to the finer-grained outcome tag. The
// tag is independent of status: it is a human-readable label of the
// most recent notable event, not the coarse filter bucket, so the two
// are derived from the same text by separate lists and need not agree.
var outcomeRules = []rule[string]{
	{"Fair use (SJ)", []*regexp.Regexp{re(`\bfair\s+use\b`), re(`\b(?:summary\s+)?judgment\b`)}},
	{"Summary Judgment", []*regexp.Regexp{re(`\bsummary\s+judgment\b`)}},
	{"Injunction", []*regexp.Regexp{re(`\binjunction\b`)}},
	{"Dismissal", []*regexp.Regexp{re(`\bdismiss`)}},
	{"Settlement", []*regexp.Regexp{re(`\bsettle`)}},
	{"Class Certification", []*regexp.Regexp{re(`\bclass\s+cert`)}},
	{"Verdict", []*regexp.Regexp{re(`\bverdict\b`)}},
	{"MDL/Transfer", []*regexp.Regexp{re(`\b(?:mdl|multi-?district|transferred|centralized)\b`)}},
	{"Stayed/Remanded", []*regexp.Regexp{re(`\bstay(?:ed)?\b|\bremand(?:ed)?\b`)}},
}

// firstMatch evaluates rules in order and returns the label of the
// first rule whose patterns all match, or fallback when none do.
// Ambiguity is resolved here deterministically, never raised.
func firstMatch[L ~string](rules []rule[L], text string, fallback L) L {
	for _, r := range rules {
		matched := true
		for _, p := range r.patterns {
			if !p.MatchString(text) {
				matched = false
				break
			}
		}
		if matched {
			return r.label
		}
	}
	return fallback
}

// Status returns the coarse lifecycle bucket for the combined caption
// and context text. Defaults to Open/Active when nothing matches.
func Status(text string) types.CaseStatus {
	return firstMatch(statusRules, text, types.StatusOpenActive)
}

// Outcome returns the finer-grained outcome label for the text.
// Defaults to "Update" when nothing matches.
func Outcome(text string) string {
	return firstMatch(outcomeRules, text, "Update")
}
