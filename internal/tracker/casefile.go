// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tracker

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/case-tracker/pkg/types"
)

// SourceRef is one entry in a sources manifest: a tracker label, its
// canonical URL, and the file holding the fetcher-extracted page text.
type SourceRef struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	File string `yaml:"file"`
}

// Manifest is the on-disk list of sources for a run. Fetchers write the
// text files; this tool never talks to the network.
type Manifest struct {
	Sources []SourceRef `yaml:"sources"`
}

// LoadManifest reads a sources manifest and the text file of each
// entry. Text file paths are resolved relative to the manifest.
func LoadManifest(path string) ([]types.SourceText, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sources manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing sources manifest %s: %w", path, err)
	}
	if len(m.Sources) == 0 {
		return nil, fmt.Errorf("sources manifest %s lists no sources", path)
	}

	base := filepath.Dir(path)
	sources := make([]types.SourceText, 0, len(m.Sources))
	for _, ref := range m.Sources {
		if ref.Name == "" || ref.File == "" {
			return nil, fmt.Errorf("sources manifest %s: every source needs a name and a file", path)
		}
		file := ref.File
		if !filepath.IsAbs(file) {
			file = filepath.Join(base, file)
		}
		text, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading source text for %s: %w", ref.Name, err)
		}
		sources = append(sources, types.SourceText{
			Name: ref.Name,
			URL:  ref.URL,
			Text: string(text),
		})
	}
	return sources, nil
}

// RunFile is the on-disk representation of one pipeline run: the
// sources it read, the records it produced, and run statistics. A run
// can be saved and re-published later without re-extracting.
type RunFile struct {
	Sources []SourceRef        `yaml:"sources"`
	Records []types.CaseRecord `yaml:"records"`
	Summary RunFileSummary     `yaml:"summary"`
}

// RunFileSummary stores run statistics and a timestamp.
type RunFileSummary struct {
	Total       int       `yaml:"total"`
	Candidates  int       `yaml:"candidates"`
	Irrelevant  int       `yaml:"irrelevant"`
	DupsRemoved int       `yaml:"duplicates_removed"`
	Timestamp   time.Time `yaml:"timestamp"`
}

// WriteRunFile saves the run's sources, records, and summary to a YAML
// file.
func WriteRunFile(path string, sources []types.SourceText, records []types.CaseRecord, summary RunSummary) error {
	rf := RunFile{
		Records: records,
		Summary: RunFileSummary{
			Total:       len(records),
			Candidates:  summary.Candidates,
			Irrelevant:  summary.Irrelevant,
			DupsRemoved: summary.DupsRemoved,
			Timestamp:   time.Now(),
		},
	}
	for _, s := range sources {
		rf.Sources = append(rf.Sources, SourceRef{Name: s.Name, URL: s.URL})
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling run file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadRunFile loads a previously saved run file from disk.
func ReadRunFile(path string) (*RunFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run file: %w", err)
	}
	var rf RunFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing run file %s: %w", path, err)
	}
	return &rf, nil
}
