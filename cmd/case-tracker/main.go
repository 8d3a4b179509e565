// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the case-tracker CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/case-tracker/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the case-tracker CLI.
var rootCmd = &cobra.Command{
	Use:   "case-tracker",
	Short: "Extract and classify AI/IP court cases from tracker text",
	Long: `case-tracker turns fetcher-extracted tracker pages into a de-duplicated
set of AI/IP court-case records. It finds case captions ("X v. Y") in raw
text, filters them by AI/IP context, compresses long party lists, infers
status and outcome from surrounding keywords, and merges duplicates
across sources.

Fetching pages and publishing the output are external concerns: extract
reads text files listed in a sources manifest and writes records JSON;
store keeps the latest run queryable in a local SQLite database.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./case-tracker.yaml or ~/.config/case-tracker/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("case-tracker")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "case-tracker"))
		}
	}

	viper.SetEnvPrefix("CASE_TRACKER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig returns the curated defaults overlaid with whatever the
// discovered config file provides. The curated lists (keywords,
// litigants, junk headings, source priority) are data, not code, so a
// config file can replace them wholesale.
func loadConfig() (types.PipelineConfig, error) {
	cfg := types.DefaultPipelineConfig()

	path := viper.ConfigFileUsed()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg.Normalized(), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
