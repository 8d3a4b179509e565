// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data structures exchanged between
// pipeline stages: source inputs, case records, and stage configuration.
package types

// CaseStatus is the coarse lifecycle bucket for a case. Values are
// ordered by classification priority: when context text matches several
// status rules at once, the highest-priority status wins.
type CaseStatus string

const (
	StatusClassCertified CaseStatus = "Class certified"
	StatusJudgment       CaseStatus = "Judgment"
	StatusInjunction     CaseStatus = "Injunction"
	StatusDismissed      CaseStatus = "Dismissed"
	StatusSettled        CaseStatus = "Settled"
	StatusRecentlyFiled  CaseStatus = "Recently filed"
	StatusOpenActive     CaseStatus = "Open/Active"
)

// RulingStatuses is the set of statuses that indicate a ruling-like
// event. Takeaways are generated only for these; a case that is merely
// open or newly filed has no ruling to draw guidance from.
var RulingStatuses = map[CaseStatus]bool{
	StatusClassCertified: true,
	StatusJudgment:       true,
	StatusInjunction:     true,
	StatusDismissed:      true,
	StatusSettled:        true,
}

// SourceText is one fetched tracker page handed to the pipeline by a
// fetcher: the extracted visible text plus the source label and the
// canonical link back. The pipeline never fetches anything itself.
type SourceText struct {
	// Name labels the originating tracker (e.g. "McKool Smith").
	Name string `json:"name" yaml:"name"`

	// URL is the canonical link back to the tracker page.
	URL string `json:"url" yaml:"url"`

	// Text is the extracted visible text of the page. Raw HTML is
	// tolerated; the normalizer strips residual markup.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
}

// CaseRecord is the canonical output unit: one de-duplicated AI/IP
// court case with its inferred status, outcome, and summary evidence.
type CaseRecord struct {
	// Title is the compressed canonical caption, always of the form
	// "Lead et al. v Lead et al." with exactly two party segments.
	Title string `json:"title" yaml:"title"`

	// Headline is the title plus an optional short status phrase.
	Headline string `json:"headline" yaml:"headline"`

	// Summary is a bounded-length excerpt of the text surrounding the
	// caption, used as classification evidence and human-readable context.
	Summary string `json:"summary" yaml:"summary"`

	// Takeaway is optional guidance text, populated only when the
	// status indicates a ruling-like event.
	Takeaway string `json:"takeaway,omitempty" yaml:"takeaway,omitempty"`

	// Status is the coarse lifecycle bucket. Never empty; defaults to
	// StatusOpenActive when no rule matches.
	Status CaseStatus `json:"status" yaml:"status"`

	// Outcome is a finer-grained human-readable label of the most
	// recent notable event, derived independently of Status.
	Outcome string `json:"outcome" yaml:"outcome"`

	// Source names the tracker the record came from.
	Source string `json:"source" yaml:"source"`

	// URL is the canonical link back to the originating material.
	URL string `json:"url" yaml:"url"`

	// CaseRef is the docket or case number, when detected nearby.
	CaseRef string `json:"case_ref,omitempty" yaml:"case_ref,omitempty"`

	// Date is the filing or edition date, when known. Trackers rarely
	// publish court dates consistently, so this is usually empty.
	Date string `json:"date,omitempty" yaml:"date,omitempty"`
}
