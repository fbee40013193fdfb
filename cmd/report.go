package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/askeland/standup/internal/classify"
	"github.com/askeland/standup/internal/timeutil"
)

// noUpdatesText is the fallback printed when no entry survives filtering.
// An empty report is a valid outcome, not an error.
const noUpdatesText = "No updates for this period."

// excludeInternalArg is the literal positional argument that drops
// internal entries from the report.
const excludeInternalArg = "exclude-internal"

// rawGeekbotCmd represents the raw-geekbot command
var rawGeekbotCmd = &cobra.Command{
	Use:   "raw-geekbot [days] [exclude-internal]",
	Short: "Print the raw standup report text",
	Long: `Print the classified standup report without LLM formatting.

Covers the last N days (default 1, i.e. today). Pass 'exclude-internal' as
the second argument to drop internal/company entries entirely.

Examples:
  standup raw-geekbot                     Today's entries
  standup raw-geekbot 3                   Last 3 days
  standup raw-geekbot 3 exclude-internal  Last 3 days, internal work dropped`,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		days, excludeInternal, ok := parseReportArgs(args, 1)
		if !ok {
			return
		}
		runReport(days, excludeInternal, false)
	},
}

// cleanGeekbotCmd represents the clean-geekbot command
var cleanGeekbotCmd = &cobra.Command{
	Use:   "clean-geekbot [days] [exclude-internal]",
	Short: "Print the standup report rewritten by the external formatter",
	Long: `Generate the standup report and pipe it through the external LLM
formatter for readable prose. Falls back to a secondary tool when the
primary times out or fails; prints the raw report when both fail.`,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		days, excludeInternal, ok := parseReportArgs(args, 1)
		if !ok {
			return
		}
		runReport(days, excludeInternal, true)
	},
}

// rawWeeklyCmd represents the raw-weekly command
var rawWeeklyCmd = &cobra.Command{
	Use:   "raw-weekly",
	Short: "Print the raw weekly report text",
	Long:  `Print the classified report for the last 7 days without LLM formatting.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runReport(7, false, false)
	},
}

// cleanWeeklyCmd represents the clean-weekly command
var cleanWeeklyCmd = &cobra.Command{
	Use:   "clean-weekly",
	Short: "Print the weekly report rewritten by the external formatter",
	Long:  `Generate the last-7-days report and pipe it through the external LLM formatter.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runReport(7, false, true)
	},
}

func init() {
	rootCmd.AddCommand(rawGeekbotCmd)
	rootCmd.AddCommand(cleanGeekbotCmd)
	rootCmd.AddCommand(rawWeeklyCmd)
	rootCmd.AddCommand(cleanWeeklyCmd)
}

// parseReportArgs reads the optional [days] and [exclude-internal]
// positional arguments.
func parseReportArgs(args []string, defaultDays int) (days int, excludeInternal bool, ok bool) {
	days = defaultDays
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid days value '%s'. Must be a positive number\n", args[0])
			deps.Exit(1)
			return 0, false, false
		}
		days = n
	}
	if len(args) > 1 {
		if args[1] != excludeInternalArg {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Unknown argument '%s' (did you mean '%s'?)\n", args[1], excludeInternalArg)
			deps.Exit(1)
			return 0, false, false
		}
		excludeInternal = true
	}
	return days, excludeInternal, true
}

// runReport classifies the entry corpus for the requested range and prints
// the report, raw or LLM-formatted.
func runReport(days int, excludeInternal bool, clean bool) {
	cfg, ok := loadConfig()
	if !ok {
		return
	}

	result := loadCorpus(cfg.DataDir)

	from, to := timeutil.LastNDays(days, deps.Now())
	buckets := classify.Classify(result.Entries, classify.Params{
		UserID:          cfg.Classification.DefaultUserID,
		From:            from,
		To:              to,
		ExcludeInternal: excludeInternal,
	}, cfg.Classification)

	text := classify.Render(buckets)
	if text == "" {
		_, _ = fmt.Fprintln(deps.Stdout, noUpdatesText)
		return
	}

	if !clean {
		_, _ = fmt.Fprint(deps.Stdout, text)
		return
	}

	formatted, err := deps.Format(context.Background(), cfg.Formatter, text)
	if err != nil {
		// Best effort: surface the raw report for manual handling.
		_, _ = fmt.Fprintf(deps.Stderr, "Warning: external formatter failed, printing raw report\n")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n\n", err)
		_, _ = fmt.Fprint(deps.Stdout, text)
		return
	}

	_, _ = fmt.Fprint(deps.Stdout, formatted)
}
