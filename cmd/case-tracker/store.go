// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/case-tracker/internal/store"
	"github.com/pdiddy/case-tracker/internal/tracker"
	"github.com/pdiddy/case-tracker/pkg/types"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the local case store (ingest, retrieve)",
	Long: `Store keeps the latest extraction run in a local SQLite database so
publishers can query it without re-running the pipeline. Ingesting a
run replaces the previous record set wholesale.`,
}

// --- ingest subcommand ---

var storeIngestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Replace the stored record set with a run's records file",
	RunE:  runStoreIngest,
}

func runStoreIngest(cmd *cobra.Command, args []string) error {
	recordsPath, _ := cmd.Flags().GetString("records")

	records, err := tracker.ReadRecordsJSON(recordsPath)
	if err != nil {
		return err
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	n, err := s.Replace(context.Background(), records)
	if err != nil {
		return err
	}
	fmt.Printf("stored %d cases\n", n)
	return nil
}

// --- retrieve subcommand ---

var storeRetrieveCmd = &cobra.Command{
	Use:   "retrieve [query]",
	Short: "Query stored cases by full-text search, status, or source",
	Long: `Retrieve searches the stored cases with FTS5 full-text search over
title and summary, optionally filtered by status or source. With no
query and no filters it lists everything up to the result limit.`,
	RunE: runStoreRetrieve,
}

func runStoreRetrieve(cmd *cobra.Command, args []string) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	status, _ := cmd.Flags().GetString("status")
	source, _ := cmd.Flags().GetString("source")
	limit, _ := cmd.Flags().GetInt("limit")

	opts := store.QueryOptions{
		Query:      strings.Join(args, " "),
		Status:     types.CaseStatus(status),
		Source:     source,
		MaxResults: limit,
	}

	results, err := s.Retrieve(context.Background(), opts)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return tracker.FormatJSON(results, os.Stdout)
	}
	tracker.FormatTable(results, tracker.RunSummary{}, os.Stdout)
	return nil
}

// --- shared helpers ---

func openStore(cmd *cobra.Command) (*store.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if db, _ := cmd.Flags().GetString("db"); db != "" {
		cfg.Store.Path = db
	}
	return store.Open(cfg.Store)
}

func init() {
	storeCmd.PersistentFlags().String("db", "", "SQLite database file (default from config, cases.db)")

	storeIngestCmd.Flags().String("records", "cases.json", "records file to ingest (JSON)")

	storeRetrieveCmd.Flags().String("status", "", "filter by case status")
	storeRetrieveCmd.Flags().String("source", "", "filter by source name")
	storeRetrieveCmd.Flags().Int("limit", 0, "maximum number of results")
	storeRetrieveCmd.Flags().Bool("json", false, "output results as JSON")

	storeCmd.AddCommand(storeIngestCmd)
	storeCmd.AddCommand(storeRetrieveCmd)
	rootCmd.AddCommand(storeCmd)
}
