package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/askeland/standup/internal/capacity"
	"github.com/askeland/standup/internal/timeutil"
)

// capacityCmd represents the capacity parent command
var capacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Analyze department hours against the contracted budget",
	Long: `Aggregate department hours per team member, work type, and month,
and compare actual usage against the contracted capacity budget.

Modes:
  summary   Markdown summary with utilization metrics
  detailed  Summary plus per-member and per-month breakdowns
  both      Summary followed by the detailed report
  json      Machine-readable report

Each mode accepts an optional start and end date (YYYY-MM-DD). The start
defaults to the contract start, the end defaults to today.

Examples:
  standup capacity summary
  standup capacity detailed 2025-01-01 2025-06-30
  standup capacity json 2025-03-01`,
}

var capacitySummaryCmd = &cobra.Command{
	Use:   "summary [startDate] [endDate]",
	Short: "Markdown summary capacity report",
	Args:  cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runCapacity("summary", args)
	},
}

var capacityDetailedCmd = &cobra.Command{
	Use:   "detailed [startDate] [endDate]",
	Short: "Capacity report with per-member and per-month breakdowns",
	Args:  cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runCapacity("detailed", args)
	},
}

var capacityBothCmd = &cobra.Command{
	Use:   "both [startDate] [endDate]",
	Short: "Summary followed by the detailed capacity report",
	Args:  cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runCapacity("both", args)
	},
}

var capacityJSONCmd = &cobra.Command{
	Use:   "json [startDate] [endDate]",
	Short: "Machine-readable capacity report",
	Args:  cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runCapacity("json", args)
	},
}

func init() {
	rootCmd.AddCommand(capacityCmd)
	capacityCmd.AddCommand(capacitySummaryCmd)
	capacityCmd.AddCommand(capacityDetailedCmd)
	capacityCmd.AddCommand(capacityBothCmd)
	capacityCmd.AddCommand(capacityJSONCmd)
}

// runCapacity aggregates the corpus for the requested range and renders
// the report in the requested mode.
func runCapacity(mode string, args []string) {
	cfg, ok := loadConfig()
	if !ok {
		return
	}

	budget, err := capacity.BudgetFromConfig(cfg.Capacity)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Invalid capacity configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	now := deps.Now()
	from := budget.Start
	to := timeutil.EndOfDay(now)

	if len(args) > 0 {
		from, err = timeutil.ParseDate(args[0])
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid start date\nDetails: %v\n", err)
			deps.Exit(1)
			return
		}
	}
	if len(args) > 1 {
		var end time.Time
		end, err = timeutil.ParseDate(args[1])
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid end date\nDetails: %v\n", err)
			deps.Exit(1)
			return
		}
		to = timeutil.EndOfDay(end)
	}

	result := loadCorpus(cfg.DataDir)
	report := capacity.Aggregate(result.Entries, from, to, budget, cfg.Capacity, now)

	switch mode {
	case "summary":
		_, _ = fmt.Fprint(deps.Stdout, capacity.RenderSummary(report))
	case "detailed":
		_, _ = fmt.Fprint(deps.Stdout, capacity.RenderDetailed(report))
	case "both":
		_, _ = fmt.Fprint(deps.Stdout, capacity.RenderSummary(report))
		_, _ = fmt.Fprintln(deps.Stdout)
		_, _ = fmt.Fprint(deps.Stdout, capacity.RenderDetailed(report))
	case "json":
		out, err := capacity.RenderJSON(report)
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to encode report: %v\n", err)
			deps.Exit(1)
			return
		}
		_, _ = fmt.Fprint(deps.Stdout, out)
	}
}
