// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/case-tracker/internal/tracker"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract de-duplicated case records from source text files",
	Long: `Extract reads the sources manifest (tracker name, URL, and the file
holding the fetched page text), runs the extraction pipeline over every
source, and writes the de-duplicated record set.

An empty result set is normal output, not a failure: the pipeline
degrades to "fewer cases found" rather than aborting.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("sources", "sources.yaml", "sources manifest (YAML)")
	extractCmd.Flags().String("out", "cases.json", "records output file (JSON)")
	extractCmd.Flags().String("run-file", "", "also save sources, records, and stats to a YAML run file")
	extractCmd.Flags().Bool("json", false, "print records as JSON instead of a table")
	extractCmd.Flags().Int("window-radius", 0, "context window radius in characters (overrides config)")
	extractCmd.Flags().Bool("require-both", false, "require both a domain keyword and a known litigant (overrides config OR policy)")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	manifestPath, _ := cmd.Flags().GetString("sources")
	outPath, _ := cmd.Flags().GetString("out")
	runFilePath, _ := cmd.Flags().GetString("run-file")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if radius, _ := cmd.Flags().GetInt("window-radius"); radius > 0 {
		cfg.Extraction.WindowRadius = radius
	}
	if requireBoth, _ := cmd.Flags().GetBool("require-both"); requireBoth {
		cfg.Relevance.RequireBoth = true
	}

	sources, err := tracker.LoadManifest(manifestPath)
	if err != nil {
		return err
	}

	pipe, err := tracker.New(cfg)
	if err != nil {
		return err
	}

	records, summary := pipe.Run(sources, os.Stderr)
	fmt.Fprintf(os.Stderr, "%d candidates, %d dropped, %d irrelevant, %d unique cases\n",
		summary.Candidates, summary.Dropped, summary.Irrelevant, summary.Kept)

	if outPath != "" {
		if err := tracker.WriteRecordsJSON(outPath, records); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %s with %d cases\n", outPath, len(records))
	}
	if runFilePath != "" {
		if err := tracker.WriteRunFile(runFilePath, sources, records, summary); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote run file %s\n", runFilePath)
	}

	if jsonOutput {
		return tracker.FormatJSON(records, os.Stdout)
	}
	tracker.FormatTable(records, summary, os.Stdout)
	return nil
}
