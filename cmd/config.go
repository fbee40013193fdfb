package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/askeland/standup/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display the effective configuration",
	Long: `Display the resolved configuration: defaults, merged with the TOML
config file when present, merged with environment overrides
(STANDUP_DATA_DIR, STANDUP_USER_ID, STANDUP_MONTHLY_BUDGET_HOURS).

Configuration file location:
  ~/.config/standup/config.toml      Linux/macOS
  %APPDATA%\standup\config.toml      Windows`,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// showConfig displays the current effective configuration as TOML.
func showConfig() {
	configPath, err := config.GetConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	fileExists := false
	if _, err := os.Stat(configPath); err == nil {
		fileExists = true
	}

	cfg, ok := loadConfig()
	if !ok {
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration for standup")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "Config file:     %s\n", configPath)
	if fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          File exists (using custom configuration)")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          No config file (using defaults)")
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	if err := toml.NewEncoder(deps.Stdout).Encode(cfg); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to encode configuration: %v\n", err)
		deps.Exit(1)
		return
	}
}
