// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package caption

import (
	"regexp"
	"strings"

	"github.com/pdiddy/case-tracker/internal/textnorm"
)

// manySideLen is the raw side length beyond which a side is assumed to
// hold more than one party even without an explicit separator.
const manySideLen = 60

// Placeholder side labels used when compression reduces a side to
// nothing. A caption like "et al. v Foo" must never be produced.
const (
	placeholderLeft  = "Plaintiffs"
	placeholderRight = "Defendants"
)

var (
	// numberingRe matches enumeration markers like "(1) " that some
	// trackers put before each party.
	numberingRe = regexp.MustCompile(`\s*\(\d+\)\s*`)

	// vsRe splits a caption on its first "v."/"v" separator.
	vsRe = regexp.MustCompile(`\s+v\.?\s+`)

	// partySepRe splits a party side into individual parties.
	partySepRe = regexp.MustCompile(`\s*,\s*|\s+&\s+|\s+and\s+|;|\s{2,}`)

	// etAlRe detects an "et al." marker in any of its spellings.
	etAlRe = regexp.MustCompile(`(?i)\bet\.?\s*al\.?`)

	// doubleEtAlRe collapses "et al. et al." runs left behind when a
	// lead party already carried its own marker.
	doubleEtAlRe = regexp.MustCompile(`(?i)(\bet al\.)(\s+et\.?\s*al\.?)+`)

	// manyRe reports whether a side names more than one party.
	manyRe = regexp.MustCompile(`(?i)\bet\.?\s*al\.?|,|\band\b|&`)
)

// Compress collapses a raw caption's party lists into the canonical
// "Lead et al. v Lead et al." short form. The result always has exactly
// two non-empty sides around a single "v" separator.
func Compress(raw string) string {
	c := textnorm.Collapse(raw)
	loc := vsRe.FindStringIndex(c)
	if loc == nil {
		return c
	}
	left := compressSide(c[:loc[0]], placeholderLeft)
	right := compressSide(c[loc[1]:], placeholderRight)
	return left + " v " + right
}

// compressSide reduces one party side to its lead party, appending
// "et al." when the side held more than one party. placeholder stands
// in when the side reduces to empty or a bare "et al.".
func compressSide(side, placeholder string) string {
	// A marker heading the side ("(1) Jane Doe ...") is an enumeration
	// prefix, not a split point; any marker after that separates two
	// parties. Matched captions often lose the leading marker, so a
	// side may open with a bare name and still carry markers inside.
	side = strings.TrimSpace(side)
	if loc := numberingRe.FindStringIndex(side); loc != nil && loc[0] == 0 {
		side = side[loc[1]:]
	}
	side = numberingRe.ReplaceAllString(side, ", ")
	side = strings.TrimSpace(side)

	lead := firstParty(side)

	// A heading that abuts a caption can leak its text into the last
	// party name ("Stability AI Background").
	lead = strings.TrimSuffix(lead, " Background")
	lead = strings.TrimSpace(lead)

	if lead == "" || len(strings.TrimSpace(etAlRe.ReplaceAllString(lead, ""))) < 2 {
		return placeholder
	}

	if manyRe.MatchString(side) || len(side) > manySideLen {
		lead += " et al."
	}
	return doubleEtAlRe.ReplaceAllString(lead, "$1")
}

// firstParty returns the first party name in a side, trimming trailing
// organizational punctuation.
func firstParty(side string) string {
	lead := ""
	for _, p := range partySepRe.Split(side, -1) {
		if p = strings.TrimSpace(p); p != "" {
			lead = p
			break
		}
	}
	if lead == "" {
		lead = strings.TrimSpace(side)
	}
	return strings.TrimRight(lead, ",; ")
}
