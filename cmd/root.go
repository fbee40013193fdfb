package cmd

import (
	"fmt"

	"github.com/askeland/standup/internal/config"
	"github.com/askeland/standup/internal/corpus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "standup",
	Short: "Status reports and capacity analysis from time-tracking logs",
	Long: `standup reads pre-fetched time-tracking JSON snapshots, classifies
entries into reporting buckets, and produces standup/weekly status reports
and a capacity report against a contracted hours budget.

Usage:
  standup raw-geekbot [days] [exclude-internal]   Raw standup report text
  standup clean-geekbot [days] [exclude-internal] Standup report, LLM-formatted
  standup raw-weekly                              Raw weekly report text
  standup clean-weekly                            Weekly report, LLM-formatted
  standup capacity summary|detailed|both|json     Capacity report
  standup tui                                     Browse buckets interactively
  standup config                                  Show resolved configuration

Data layout: <data_dir>/<ProjectName>/logs/<prefix>-<YYYY-MM-DD>.json,
each file a JSON array of time entries. Configure data_dir and the
classification rules in the config file (see 'standup config').`,
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"standup version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig resolves configuration through deps and reports failures.
// Returns false when the config could not be loaded.
func loadConfig() (config.Config, bool) {
	cfg, err := deps.LoadConfig()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check the config file with 'standup config'")
		deps.Exit(1)
		return cfg, false
	}
	return cfg, true
}

// loadCorpus reads the snapshot tree and surfaces loader warnings on
// stderr. Loading is best-effort; warnings never abort a report.
func loadCorpus(dataDir string) corpus.Result {
	result := corpus.Load(dataDir)
	if len(result.Warnings) > 0 {
		_, _ = fmt.Fprintf(deps.Stderr, "Warning: %d problem(s) while loading entries:\n", len(result.Warnings))
		for _, w := range result.Warnings {
			_, _ = fmt.Fprintf(deps.Stderr, "  %s: %s\n", w.Source, w.Error)
		}
		_, _ = fmt.Fprintln(deps.Stderr)
	}
	return result
}
