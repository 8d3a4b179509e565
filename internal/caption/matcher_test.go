// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package caption

import (
	"testing"

	"github.com/pdiddy/case-tracker/pkg/types"
)

func testExtractionConfig() types.ExtractionConfig {
	return types.ExtractionConfig{
		WindowRadius:  400,
		MinCaptionLen: 8,
		MaxSideLen:    120,
		SummaryLimit:  900,
		JunkHeadings: []string{
			`(?i)^case\s+updates?\b`,
			`(?i)^our\s+professionals\b`,
		},
	}
}

func TestMatcherFind(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantCaps    []string
		wantDropped int
	}{
		{
			name:     "single caption",
			text:     "filed in copyright court, Authors Guild v. OpenAI Inc., over training data",
			wantCaps: []string{"Authors Guild v. OpenAI Inc"},
		},
		{
			name:     "captions in order of appearance",
			text:     "first came Silverman v. OpenAI, and later, Kadrey v. Meta Platforms, both over books",
			wantCaps: []string{"Silverman v. OpenAI", "Kadrey v. Meta Platforms"},
		},
		{
			name:     "separator without period",
			text:     "the appeal in Getty Images v Stability AI, over twelve million photographs",
			wantCaps: []string{"Getty Images v Stability AI"},
		},
		{
			name:     "right side opening with an enumeration marker",
			text:     "see Doe v. (1) Example AI Corp (2) Example Labs, over training data",
			wantCaps: []string{"Doe v. (1) Example AI Corp (2) Example Labs"},
		},
		{
			name:        "junk heading excluded",
			text:        "Case Updates Smith v. Jones, copyright claims over AI training",
			wantCaps:    nil,
			wantDropped: 1,
		},
		{
			name:        "too short excluded",
			text:        "see Ab v Cd, below",
			wantCaps:    nil,
			wantDropped: 1,
		},
		{
			name:     "no captions",
			text:     "nothing here resembles a case name at all",
			wantCaps: nil,
		},
		{
			name:     "empty text",
			text:     "",
			wantCaps: nil,
		},
	}

	m, err := NewMatcher(testExtractionConfig())
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches, dropped := m.Find(tt.text)
			if len(matches) != len(tt.wantCaps) {
				t.Fatalf("got %d matches, want %d: %+v", len(matches), len(tt.wantCaps), matches)
			}
			for i, want := range tt.wantCaps {
				if matches[i].Caption != want {
					t.Errorf("match[%d].Caption = %q, want %q", i, matches[i].Caption, want)
				}
			}
			if dropped != tt.wantDropped {
				t.Errorf("dropped = %d, want %d", dropped, tt.wantDropped)
			}
		})
	}
}

func TestMatcherSideBound(t *testing.T) {
	cfg := testExtractionConfig()
	cfg.MaxSideLen = 20
	m, err := NewMatcher(cfg)
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}

	matches, dropped := m.Find("see Doe v. Extremely Long Corporate Entity Name Incorporated Holdings")
	if len(matches) != 0 {
		t.Errorf("got %d matches, want 0", len(matches))
	}
	if dropped != 1 {
		t.Errorf("dropped = %d, want 1", dropped)
	}
}

func TestMatcherOffsets(t *testing.T) {
	m, err := NewMatcher(testExtractionConfig())
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}

	text := "ruling in Bartz v. Anthropic, issued this week"
	matches, _ := m.Find(text)
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	m0 := matches[0]
	if got := text[m0.Start:m0.End]; got != "Bartz v. Anthropic was issued"[:m0.End-m0.Start] && got != m0.Caption {
		t.Errorf("offsets select %q, want %q", got, m0.Caption)
	}
	if m0.Left != "Bartz" {
		t.Errorf("Left = %q, want %q", m0.Left, "Bartz")
	}
}

func TestMatcherBadJunkPattern(t *testing.T) {
	cfg := testExtractionConfig()
	cfg.JunkHeadings = []string{`(unclosed`}
	if _, err := NewMatcher(cfg); err == nil {
		t.Fatal("expected error for invalid junk pattern")
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name               string
		text               string
		start, end, radius int
		want               string
	}{
		{"middle", "abcdefghij", 4, 6, 2, "cdefgh"},
		{"clamped left", "abcdefghij", 1, 3, 5, "abcdefgh"},
		{"clamped both", "abc", 0, 3, 10, "abc"},
		{"collapses whitespace", "x   Smith v. Jones   y", 4, 18, 4, "x Smith v. Jones y"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Window(tt.text, tt.start, tt.end, tt.radius); got != tt.want {
				t.Errorf("Window = %q, want %q", got, tt.want)
			}
		})
	}
}
