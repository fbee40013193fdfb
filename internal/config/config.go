package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application name used for config directory
	AppName = "standup"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// Config represents the application configuration.
// Values come from hard-coded defaults, overridden by the TOML config file,
// overridden by a small set of environment variables. The resolved Config is
// constructed once at process start and passed down explicitly; nothing
// reads ambient state after Load returns.
type Config struct {
	// DataDir is the root of the pre-fetched log snapshots
	// (<DataDir>/<ProjectName>/logs/<prefix>-<YYYY-MM-DD>.json).
	DataDir string `toml:"data_dir"`

	Classification Classification `toml:"classification"`
	Capacity       Capacity       `toml:"capacity"`
	Formatter      Formatter      `toml:"formatter"`
}

// Classification holds the bucket-assignment rules for report generation.
type Classification struct {
	// DefaultUserID is the user whose entries standup reports cover.
	DefaultUserID int64 `toml:"default_user_id"`
	// InternalTagMarkers mark an entry as internal/company work when any
	// tag name contains one of them (case-insensitive).
	InternalTagMarkers []string `toml:"internal_tag_markers"`
	// InternalProjectID is the project bucket used for internal work.
	InternalProjectID int64 `toml:"internal_project_id"`
	// ClientMarker is the literal (case-sensitive) substring in a project
	// name that flags it as a client project, e.g. "[LSM]".
	ClientMarker string `toml:"client_marker"`
	// ClientShortNames are known client project short-names used to derive
	// display names for client buckets.
	ClientShortNames []string `toml:"client_short_names"`
	// DepartmentProjectIDs are the department bucket plus auxiliary
	// shared-tool buckets counted as general department work.
	DepartmentProjectIDs []int64 `toml:"department_project_ids"`
	// DepartmentPolicy selects how entries in department buckets are
	// treated: "inclusive" counts every non-internal entry as department
	// work; "strict" additionally requires a tag containing one of
	// DepartmentTagMarkers, otherwise the entry lands in Other.
	DepartmentPolicy string `toml:"department_policy"`
	// DepartmentTagMarkers are only consulted under the "strict" policy.
	DepartmentTagMarkers []string `toml:"department_tag_markers"`
}

// Capacity holds the fixed-price contract budget and the work-type rules
// used by the capacity report.
type Capacity struct {
	MonthlyBudgetHours float64 `toml:"monthly_budget_hours"`
	ContractTotalHours float64 `toml:"contract_total_hours"`
	// ContractStart/ContractEnd are YYYY-MM-DD dates.
	ContractStart string `toml:"contract_start"`
	ContractEnd   string `toml:"contract_end"`

	// ProServicesTags mark an entry as Professional Services when any tag
	// matches one of them (case-insensitive).
	ProServicesTags []string `toml:"pro_services_tags"`
	// InitiativeKeywords mark an entry as Professional Services when the
	// description contains one of them (case-insensitive).
	InitiativeKeywords []string `toml:"initiative_keywords"`

	// Utilization thresholds (percent) and their recommendation texts.
	ScaleBelowPct    float64 `toml:"scale_below_pct"`
	OptimizeBelowPct float64 `toml:"optimize_below_pct"`
	ScaleText        string  `toml:"scale_text"`
	OptimizeText     string  `toml:"optimize_text"`
	ExpandText       string  `toml:"expand_text"`
}

// Formatter configures the external LLM CLI used to rewrite raw report text.
type Formatter struct {
	// Primary and Fallback are argv vectors; the report text is fed on stdin.
	Primary  []string `toml:"primary"`
	Fallback []string `toml:"fallback"`
	// TimeoutSeconds bounds each attempt.
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// DefaultConfig returns a Config with the hard-coded defaults.
func DefaultConfig() Config {
	return Config{
		DataDir: "",
		Classification: Classification{
			InternalTagMarkers:   []string{"internal", "sales"},
			ClientMarker:         "[LSM]",
			DepartmentPolicy:     "inclusive",
			DepartmentTagMarkers: []string{"lsm"},
		},
		Capacity: Capacity{
			MonthlyBudgetHours: 160,
			ContractTotalHours: 1920,
			ContractStart:      "2025-01-01",
			ContractEnd:        "2025-12-31",
			ProServicesTags:    []string{"professional services", "project"},
			InitiativeKeywords: []string{"migration", "implementation", "rollout", "onboarding"},
			ScaleBelowPct:      80,
			OptimizeBelowPct:   100,
			ScaleText:          "Utilization is below budget: there is room to scale up engagement.",
			OptimizeText:       "Utilization is near budget: optimize the current allocation before adding work.",
			ExpandText:         "Utilization is at or over budget: consider additional resources.",
		},
		Formatter: Formatter{
			Primary:        []string{"claude", "-p"},
			Fallback:       []string{"llm"},
			TimeoutSeconds: 10,
		},
	}
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// Load resolves the configuration: defaults, then the TOML file at path
// (missing file is fine), then environment overrides. Returns an error only
// for an unreadable or malformed config file.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !os.IsNotExist(err) {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnvOverrides applies the supported environment variables on top of
// file/default values.
func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("STANDUP_DATA_DIR")); v != "" {
		cfg.DataDir = v
	}
	if v := strings.TrimSpace(os.Getenv("STANDUP_USER_ID")); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Classification.DefaultUserID = id
		}
	}
	if v := strings.TrimSpace(os.Getenv("STANDUP_MONTHLY_BUDGET_HOURS")); v != "" {
		if hours, err := strconv.ParseFloat(v, 64); err == nil && hours > 0 {
			cfg.Capacity.MonthlyBudgetHours = hours
		}
	}
}

// Validate checks invariants the rest of the code relies on.
func (c Config) Validate() error {
	if c.Capacity.MonthlyBudgetHours <= 0 {
		return fmt.Errorf("capacity.monthly_budget_hours must be positive, got %v", c.Capacity.MonthlyBudgetHours)
	}
	switch c.Classification.DepartmentPolicy {
	case "inclusive", "strict":
	default:
		return fmt.Errorf("classification.department_policy must be 'inclusive' or 'strict', got %q", c.Classification.DepartmentPolicy)
	}
	return nil
}
