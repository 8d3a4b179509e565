// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// NormalizeConfig holds settings for the text normalizer.
type NormalizeConfig struct {
	// Repairs maps known text-extraction artifacts to their replacements
	// (e.g. a word fragment that lost its leading syllable upstream).
	// Targeted substitution only, not spell correction.
	Repairs map[string]string `json:"repairs,omitempty" yaml:"repairs,omitempty"`
}

// ExtractionConfig holds settings for caption matching and context
// window extraction.
type ExtractionConfig struct {
	// WindowRadius is the amount of surrounding text kept on each side
	// of a caption as classification evidence (default 400 characters).
	// Too small misses relevant context; too large pulls in unrelated
	// nearby text and triggers false positives.
	WindowRadius int `json:"window_radius" yaml:"window_radius"`

	// MinCaptionLen is the minimum length of a caption match (default 8).
	// Shorter matches are noise.
	MinCaptionLen int `json:"min_caption_len" yaml:"min_caption_len"`

	// MaxSideLen bounds each party side of a raw caption match
	// (default 120) so a match cannot swallow an entire paragraph.
	MaxSideLen int `json:"max_side_len" yaml:"max_side_len"`

	// SummaryLimit caps the stored summary length in runes (default 900).
	SummaryLimit int `json:"summary_limit" yaml:"summary_limit"`

	// JunkHeadings lists regex patterns for navigation and heading text
	// that the caption regex matches by accident ("Case Updates", A-Z
	// directory listings). A candidate whose caption matches one of
	// these is discarded. Maintenance-heavy by nature; kept as data.
	JunkHeadings []string `json:"junk_headings,omitempty" yaml:"junk_headings,omitempty"`
}

// RelevanceConfig holds the curated vocabulary for the relevance filter.
type RelevanceConfig struct {
	// Keywords are AI/IP-domain terms matched case-insensitively as
	// whole words against the context window.
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`

	// Litigants are known AI/IP party names (model vendors, publishers,
	// rights-holders) matched case-insensitively as substrings against
	// the caption's party names.
	Litigants []string `json:"litigants,omitempty" yaml:"litigants,omitempty"`

	// RequireBoth switches the filter from keyword-OR-litigant (the
	// default) to requiring both signals. The tracker sources themselves
	// disagree on this boundary, so it is policy, not code.
	RequireBoth bool `json:"require_both" yaml:"require_both"`
}

// DedupeConfig holds settings for cross-source de-duplication.
type DedupeConfig struct {
	// SourcePriority orders source names from most to least preferred.
	// When two records share a normalized-title key, the record from the
	// earlier-listed source wins; sources absent from the list rank
	// below all listed ones and tie with each other.
	SourcePriority []string `json:"source_priority,omitempty" yaml:"source_priority,omitempty"`
}

// StoreConfig holds settings for the local case store.
type StoreConfig struct {
	// Path is the SQLite database file (default "cases.db").
	Path string `json:"path" yaml:"path"`

	// MaxResults is the default maximum number of query results (default 50).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Normalize  NormalizeConfig  `json:"normalize" yaml:"normalize"`
	Extraction ExtractionConfig `json:"extraction" yaml:"extraction"`
	Relevance  RelevanceConfig  `json:"relevance" yaml:"relevance"`
	Dedupe     DedupeConfig     `json:"dedupe" yaml:"dedupe"`
	Store      StoreConfig      `json:"store" yaml:"store"`
}

// DefaultPipelineConfig returns the curated defaults the tracker ships
// with. Every list here is expected to drift over time and can be
// overridden wholesale from the config file.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Normalize: NormalizeConfig{
			Repairs: map[string]string{
				"tificial intelligence": "artificial intelligence",
				"nerative AI":           "generative AI",
				"pyright infringement":  "copyright infringement",
			},
		},
		Extraction: ExtractionConfig{
			WindowRadius:  400,
			MinCaptionLen: 8,
			MaxSideLen:    120,
			SummaryLimit:  900,
			JunkHeadings: []string{
				`(?i)^case\s+updates?\b`,
				`(?i)^our\s+professionals\b`,
				`(?i)^background$`,
				`(?i)^news\s+(?:&|and)\s+insights\b`,
				`^(?:[A-Z]\s+){3,}[A-Z]$`, // A B C ... Z directory strips
			},
		},
		Relevance: RelevanceConfig{
			Keywords: []string{
				"ai", "artificial intelligence", "generative", "gen ai",
				"llm", "model", "training", "training data", "dataset",
				"copyright", "dmca", "right of publicity",
				"digital replica", "source code", "scraping", "fair use",
			},
			Litigants: []string{
				"OpenAI", "Anthropic", "Meta Platforms", "Stability AI",
				"Midjourney", "Microsoft", "Google", "Nvidia",
				"Perplexity", "Suno", "Udio", "Ross Intelligence",
				"Getty Images", "The New York Times", "Thomson Reuters",
				"Universal Music", "UMG Recordings", "Concord Music",
				"Authors Guild", "Sarah Silverman",
			},
		},
		Dedupe: DedupeConfig{
			SourcePriority: []string{
				"McKool Smith",
				"BakerHostetler",
				"WIRED",
				"Mishcon de Reya LLP",
			},
		},
		Store: StoreConfig{
			Path:       "cases.db",
			MaxResults: 50,
		},
	}
}

// Normalized returns a copy of the config with zero-valued tunables
// replaced by their defaults, so components never see a zero radius or
// limit from a sparse config file.
func (c PipelineConfig) Normalized() PipelineConfig {
	def := DefaultPipelineConfig()
	if c.Extraction.WindowRadius <= 0 {
		c.Extraction.WindowRadius = def.Extraction.WindowRadius
	}
	if c.Extraction.MinCaptionLen <= 0 {
		c.Extraction.MinCaptionLen = def.Extraction.MinCaptionLen
	}
	if c.Extraction.MaxSideLen <= 0 {
		c.Extraction.MaxSideLen = def.Extraction.MaxSideLen
	}
	if c.Extraction.SummaryLimit <= 0 {
		c.Extraction.SummaryLimit = def.Extraction.SummaryLimit
	}
	if c.Store.Path == "" {
		c.Store.Path = def.Store.Path
	}
	if c.Store.MaxResults <= 0 {
		c.Store.MaxResults = def.Store.MaxResults
	}
	return c
}
