package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/askeland/standup/internal/classify"
	"github.com/askeland/standup/internal/timeutil"
	"github.com/askeland/standup/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse classified report buckets interactively",
	Long: `Launch an interactive browser over the classified report buckets.

The left pane lists buckets with their total duration; the right pane shows
the entry lines of the selected bucket.

Keyboard shortcuts:
  j/k or arrows: Navigate buckets
  q: Quit`,
	Run: func(cmd *cobra.Command, args []string) {
		days, _ := cmd.Flags().GetInt("days")
		excludeInternal, _ := cmd.Flags().GetBool("exclude-internal")
		runTUI(days, excludeInternal)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().Int("days", 7, "Number of days the report covers")
	tuiCmd.Flags().Bool("exclude-internal", false, "Drop internal/company entries")
}

// runTUI classifies the corpus and starts the bucket browser.
func runTUI(days int, excludeInternal bool) {
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

	title := fmt.Sprintf("standup · %s to %s", from.Format("2006-01-02"), to.Format("2006-01-02"))
	if err := tui.Run(title, buckets); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error running TUI: %v\n", err)
		deps.Exit(1)
		return
	}
}
