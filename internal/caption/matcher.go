// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package caption finds "X v. Y"-shaped case names in free text,
// extracts bounded context windows around them, and compresses long
// party lists into canonical short captions.
package caption

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/case-tracker/internal/textnorm"
	"github.com/pdiddy/case-tracker/pkg/types"
)

// captionRe matches a candidate caption: a capitalized run, a "v." or
// "v" separator, and a second capitalized run. Party runs admit word
// characters, apostrophes, ampersands, periods, hyphens, and the
// parenthesized numbering some trackers put before each party; the
// right side may open with such a marker ("v. (1) Example Corp"). The
// run ends at characters outside the class (commas, colons,
// semicolons), which is what keeps a match from swallowing the rest of
// a sentence.
var captionRe = regexp.MustCompile(`\b([A-Z][A-Za-z0-9.\-’'&() ]+?)\s+v\.?\s+([A-Z(][A-Za-z0-9.\-’'&() ]+)\b`)

// Match is one candidate caption occurrence with its position in the
// source text, so callers can extract surrounding evidence.
type Match struct {
	// Caption is the raw matched caption text, whitespace-collapsed.
	Caption string

	// Left and Right are the raw party sides of the match.
	Left, Right string

	// Start and End are byte offsets of the match in the source text.
	Start, End int
}

// Matcher scans text for candidate captions. Safe for concurrent use.
type Matcher struct {
	minLen  int
	maxSide int
	junk    []*regexp.Regexp
}

// NewMatcher compiles the junk-heading exclusion patterns from config.
// An invalid pattern is a configuration error, not a soft skip.
func NewMatcher(cfg types.ExtractionConfig) (*Matcher, error) {
	junk := make([]*regexp.Regexp, 0, len(cfg.JunkHeadings))
	for _, p := range cfg.JunkHeadings {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compiling junk heading pattern %q: %w", p, err)
		}
		junk = append(junk, re)
	}
	return &Matcher{
		minLen:  cfg.MinCaptionLen,
		maxSide: cfg.MaxSideLen,
		junk:    junk,
	}, nil
}

// Find returns candidate captions in order of appearance, left to
// right, non-overlapping, along with the count of candidates dropped
// for being too short, having an oversized party side, or matching a
// junk-heading pattern. Zero matches is a valid, common result.
func (m *Matcher) Find(text string) ([]Match, int) {
	var matches []Match
	dropped := 0
	for _, idx := range captionRe.FindAllStringSubmatchIndex(text, -1) {
		left := strings.TrimSpace(text[idx[2]:idx[3]])
		right := strings.TrimSpace(text[idx[4]:idx[5]])
		capText := textnorm.Collapse(text[idx[0]:idx[1]])

		if len(capText) < m.minLen || len(left) > m.maxSide || len(right) > m.maxSide || m.isJunk(capText) {
			dropped++
			continue
		}

		matches = append(matches, Match{
			Caption: capText,
			Left:    left,
			Right:   right,
			Start:   idx[0],
			End:     idx[1],
		})
	}
	return matches, dropped
}

func (m *Matcher) isJunk(capText string) bool {
	for _, re := range m.junk {
		if re.MatchString(capText) {
			return true
		}
	}
	return false
}

// Window returns up to radius bytes of text on each side of the
// [start, end) span, clamped to the text bounds, trimmed to valid
// UTF-8, and whitespace-collapsed. This is the evidence span used for
// relevance filtering and classification.
func Window(text string, start, end, radius int) string {
	a := start - radius
	if a < 0 {
		a = 0
	}
	b := end + radius
	if b > len(text) {
		b = len(text)
	}
	return textnorm.Collapse(strings.ToValidUTF8(text[a:b], ""))
}
