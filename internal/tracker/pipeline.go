// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tracker wires the extraction components into the full
// pipeline: normalize → match → filter → compress → classify →
// headline → dedupe. It consumes fetcher-extracted source text and
// produces the final de-duplicated case record set; it never fetches
// or renders anything itself.
package tracker

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/pdiddy/case-tracker/internal/caption"
	"github.com/pdiddy/case-tracker/internal/classify"
	"github.com/pdiddy/case-tracker/internal/dedupe"
	"github.com/pdiddy/case-tracker/internal/headline"
	"github.com/pdiddy/case-tracker/internal/textnorm"
	"github.com/pdiddy/case-tracker/pkg/types"
)

// Pipeline holds the configured extraction components. Safe for
// concurrent use; every run rebuilds its record set from scratch.
type Pipeline struct {
	cfg       types.PipelineConfig
	norm      *textnorm.Normalizer
	matcher   *caption.Matcher
	relevance *classify.Relevance
	takeaways *headline.Generator
	deduper   *dedupe.Deduper
}

// New builds a Pipeline from config, filling zero-valued tunables with
// their defaults.
func New(cfg types.PipelineConfig) (*Pipeline, error) {
	cfg = cfg.Normalized()
	matcher, err := caption.NewMatcher(cfg.Extraction)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		cfg:       cfg,
		norm:      textnorm.New(cfg.Normalize),
		matcher:   matcher,
		relevance: classify.NewRelevance(cfg.Relevance),
		takeaways: headline.NewGenerator(nil),
		deduper:   dedupe.New(cfg.Dedupe),
	}, nil
}

// RunSummary holds per-run counts. No-match conditions are not errors;
// they only show up here.
type RunSummary struct {
	Sources     int
	Candidates  int
	Dropped     int
	Irrelevant  int
	Kept        int
	DupsRemoved int
}

// Run fans the sources out to a goroutine each, extracts candidate
// records, and reduces them through the deduplicator. The deduplicator
// is the only barrier: a record arriving late can still replace an
// earlier one under the tie-break rule, so reduction waits for all
// candidates. Progress lines go to w.
func (p *Pipeline) Run(sources []types.SourceText, w io.Writer) ([]types.CaseRecord, RunSummary) {
	type sourceResult struct {
		records []types.CaseRecord
		stats   SourceStats
	}

	ch := make(chan sourceResult, len(sources))
	var wg sync.WaitGroup
	for _, src := range sources {
		wg.Add(1)
		go func(src types.SourceText) {
			defer wg.Done()
			records, stats := p.Extract(src)
			ch <- sourceResult{records: records, stats: stats}
		}(src)
	}
	go func() {
		wg.Wait()
		close(ch)
	}()

	summary := RunSummary{Sources: len(sources)}
	var candidates []types.CaseRecord
	for res := range ch {
		fmt.Fprintf(w, "%-22s %3d matched, %3d dropped, %3d irrelevant, %3d kept\n",
			res.stats.Source, res.stats.Candidates, res.stats.Dropped, res.stats.Irrelevant, res.stats.Kept)
		summary.Candidates += res.stats.Candidates
		summary.Dropped += res.stats.Dropped
		summary.Irrelevant += res.stats.Irrelevant
		candidates = append(candidates, res.records...)
	}

	final := p.deduper.Dedupe(candidates)
	summary.Kept = len(final)
	summary.DupsRemoved = len(candidates) - len(final)
	return final, summary
}

// SourceStats holds extraction counts for one source.
type SourceStats struct {
	Source     string
	Candidates int
	Dropped    int
	Irrelevant int
	Kept       int
}

// Extract runs the candidate chain over one source's text and returns
// the records it yields, before cross-source de-duplication. Candidates
// are independent of each other; a rejected candidate is a silent skip.
func (p *Pipeline) Extract(src types.SourceText) ([]types.CaseRecord, SourceStats) {
	stats := SourceStats{Source: src.Name}

	text := p.norm.Normalize(src.Text)
	matches, dropped := p.matcher.Find(text)
	stats.Candidates = len(matches) + dropped
	stats.Dropped = dropped

	var records []types.CaseRecord
	for _, m := range matches {
		window := caption.Window(text, m.Start, m.End, p.cfg.Extraction.WindowRadius)

		if !p.relevance.Relevant(m.Left, m.Right, window) {
			stats.Irrelevant++
			continue
		}

		title := caption.Compress(m.Caption)
		if !strings.Contains(title, " v ") {
			// No resolvable two-sided caption; discard, never store a
			// placeholder record.
			stats.Dropped++
			continue
		}

		// Classification reads the compressed caption and the window
		// together, so a status keyword inside the caption itself
		// still counts.
		ruleText := title + ". " + window
		status := classify.Status(ruleText)

		records = append(records, types.CaseRecord{
			Title:    title,
			Headline: headline.Headline(ruleText, title),
			Summary:  truncate(window, p.cfg.Extraction.SummaryLimit),
			Takeaway: p.takeaways.Takeaway(title, status, ruleText),
			Status:   status,
			Outcome:  classify.Outcome(ruleText),
			Source:   src.Name,
			URL:      src.URL,
			CaseRef:  caption.CaseRef(window),
		})
	}
	stats.Kept = len(records)
	return records, stats
}

// truncate caps s at limit runes.
func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
