// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify decides which candidate captions are AI/IP cases and
// maps their surrounding text to status and outcome labels via ordered
// keyword-pattern rules.
package classify

import (
	"regexp"
	"strings"

	"github.com/pdiddy/case-tracker/pkg/types"
)

// Relevance decides whether a candidate caption is plausibly about
// AI/IP litigation. Safe for concurrent use.
type Relevance struct {
	keywords    *regexp.Regexp
	litigants   []string
	requireBoth bool
}

// NewRelevance builds the filter from the curated vocabulary. Keywords
// are matched as case-insensitive whole words in the context window;
// litigants as case-insensitive substrings of the party names.
func NewRelevance(cfg types.RelevanceConfig) *Relevance {
	r := &Relevance{requireBoth: cfg.RequireBoth}
	if len(cfg.Keywords) > 0 {
		quoted := make([]string, len(cfg.Keywords))
		for i, kw := range cfg.Keywords {
			quoted[i] = regexp.QuoteMeta(kw)
		}
		r.keywords = regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
	}
	for _, l := range cfg.Litigants {
		if l = strings.TrimSpace(l); l != "" {
			r.litigants = append(r.litigants, strings.ToLower(l))
		}
	}
	return r
}

// Relevant reports whether the caption with party sides left/right and
// surrounding context passes the filter. Default policy is OR: a
// curated-litigant hit alone is strong enough evidence, and so is a
// domain-keyword hit alone even for unlisted parties. With RequireBoth
// set, both signals must be present.
func (r *Relevance) Relevant(left, right, context string) bool {
	kw := r.keywords != nil && r.keywords.MatchString(context)
	lit := r.knownLitigant(left) || r.knownLitigant(right)
	if r.requireBoth {
		return kw && lit
	}
	return kw || lit
}

func (r *Relevance) knownLitigant(party string) bool {
	p := strings.ToLower(party)
	for _, l := range r.litigants {
		if strings.Contains(p, l) {
			return true
		}
	}
	return false
}
