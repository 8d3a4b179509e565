// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tracker

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/case-tracker/pkg/types"
)

// WriteRecordsJSON writes the record set as indented JSON, the contract
// downstream publishers consume.
func WriteRecordsJSON(path string, records []types.CaseRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating records file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("writing records file %s: %w", path, err)
	}
	return nil
}

// ReadRecordsJSON loads a records file written by WriteRecordsJSON.
func ReadRecordsJSON(path string) ([]types.CaseRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading records file: %w", err)
	}
	var records []types.CaseRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing records file %s: %w", path, err)
	}
	return records, nil
}

// FormatJSON writes records as indented JSON to w.
func FormatJSON(records []types.CaseRecord, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(records)
}

// FormatTable writes records as a human-readable table to w. An empty
// record set is normal output, not a failure.
func FormatTable(records []types.CaseRecord, summary RunSummary, w io.Writer) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No cases found.")
		return
	}

	fmt.Fprintf(w, "%-52s  %-15s  %-20s  %-18s  %s\n",
		"Title", "Status", "Outcome", "Source", "Case ref")
	fmt.Fprintln(w, strings.Repeat("-", 118))

	for _, r := range records {
		fmt.Fprintf(w, "%-52s  %-15s  %-20s  %-18s  %s\n",
			clip(r.Title, 52), clip(string(r.Status), 15), clip(r.Outcome, 20),
			clip(r.Source, 18), r.CaseRef)
	}

	fmt.Fprintf(w, "\n%d unique cases", len(records))
	if summary.DupsRemoved > 0 {
		fmt.Fprintf(w, " (%d duplicates removed)", summary.DupsRemoved)
	}
	fmt.Fprintln(w)
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
