// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textnorm flattens raw tracker text into a single clean line:
// residual markup stripped, HTML entities decoded, whitespace collapsed,
// and known extraction artifacts repaired.
package textnorm

import (
	"html"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/case-tracker/pkg/types"
)

// markupRe detects whether text still contains HTML tags. Fetchers hand
// us extracted visible text, but some sources leak fragments through.
var markupRe = regexp.MustCompile(`<\s*/?\s*[a-zA-Z][^>]*>`)

// chromeSelector matches the non-content elements removed before taking
// the document text.
const chromeSelector = "script, style, noscript, svg, nav, header, footer, form, aside"

// Normalizer cleans raw source text. Safe for concurrent use.
type Normalizer struct {
	repairs []repair
}

type repair struct {
	re *regexp.Regexp
	to string
}

// New builds a Normalizer from config. The repair table is applied in
// sorted key order so output is deterministic. Each artifact is matched
// at a word boundary: a repaired fragment must not re-trigger on its
// own replacement, or normalization would stop being idempotent.
func New(cfg types.NormalizeConfig) *Normalizer {
	keys := make([]string, 0, len(cfg.Repairs))
	for k := range cfg.Repairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	repairs := make([]repair, 0, len(keys))
	for _, k := range keys {
		repairs = append(repairs, repair{
			re: regexp.MustCompile(`\b` + regexp.QuoteMeta(k)),
			to: cfg.Repairs[k],
		})
	}
	return &Normalizer{repairs: repairs}
}

// Normalize returns a single-line form of s: markup stripped, entities
// decoded, artifact repairs applied, runs of whitespace collapsed to one
// space. Never fails; empty input yields the empty string.
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}
	if markupRe.MatchString(s) {
		s = stripMarkup(s)
	}
	s = html.UnescapeString(s)
	for _, r := range n.repairs {
		s = r.re.ReplaceAllString(s, r.to)
	}
	return Collapse(s)
}

// Collapse reduces all runs of whitespace in s to single spaces and
// trims the ends. Idempotent.
func Collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// stripMarkup parses s as an HTML fragment, removes script/style/nav
// chrome, and returns the visible text. On a parse failure the raw
// input is returned and later stages treat it as plain text.
func stripMarkup(s string) string {
	// Pad tags so adjacent elements don't fuse ("…</p><p>…" must not
	// join two words). The extra spaces collapse later.
	s = strings.ReplaceAll(s, "<", " <")
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	doc.Find(chromeSelector).Remove()
	return doc.Text()
}
