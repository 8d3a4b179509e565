// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dedupe merges case records describing the same case across
// sources and extraction passes into one canonical record per case.
package dedupe

import (
	"sort"
	"strings"
	"unicode"

	"github.com/pdiddy/case-tracker/pkg/types"
)

// unlistedRank sorts sources absent from the priority list below every
// listed source; unlisted sources tie with each other.
const unlistedRank = 1 << 20

// Deduper reduces a multiset of case records to at most one record per
// normalized-title key. Safe for concurrent use.
type Deduper struct {
	rank map[string]int
}

// New builds a Deduper from the configured source-priority ordering
// (earlier entries win ties).
func New(cfg types.DedupeConfig) *Deduper {
	rank := make(map[string]int, len(cfg.SourcePriority))
	for i, s := range cfg.SourcePriority {
		rank[strings.ToLower(s)] = i
	}
	return &Deduper{rank: rank}
}

// Key returns the de-duplication key for a title: casefolded,
// punctuation stripped, whitespace collapsed.
func Key(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Dedupe returns the records with duplicates collapsed, sorted by title
// (case-insensitive). Collapsing is a fold with a total "better-of"
// comparison, so any permutation of the input yields the same output.
func (d *Deduper) Dedupe(records []types.CaseRecord) []types.CaseRecord {
	byKey := make(map[string]types.CaseRecord, len(records))
	for _, r := range records {
		k := Key(r.Title)
		if k == "" {
			continue
		}
		cur, ok := byKey[k]
		if !ok || d.better(r, cur) {
			byKey[k] = r
		}
	}

	out := make([]types.CaseRecord, 0, len(byKey))
	for _, r := range byKey {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
	})
	return out
}

// better reports whether a should replace b. Source priority decides
// first; a longer summary (more complete evidence) breaks priority
// ties; the remaining comparisons exist only to keep the fold total so
// the result cannot depend on input order.
func (d *Deduper) better(a, b types.CaseRecord) bool {
	ra, rb := d.sourceRank(a.Source), d.sourceRank(b.Source)
	if ra != rb {
		return ra < rb
	}
	if len(a.Summary) != len(b.Summary) {
		return len(a.Summary) > len(b.Summary)
	}
	if a.Source != b.Source {
		return a.Source < b.Source
	}
	if a.Summary != b.Summary {
		return a.Summary < b.Summary
	}
	if a.URL != b.URL {
		return a.URL < b.URL
	}
	if a.Headline != b.Headline {
		return a.Headline < b.Headline
	}
	return false
}

func (d *Deduper) sourceRank(source string) int {
	if r, ok := d.rank[strings.ToLower(source)]; ok {
		return r
	}
	return unlistedRank
}
