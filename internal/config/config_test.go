package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Classification.ClientMarker != "[LSM]" {
		t.Errorf("ClientMarker = %q", cfg.Classification.ClientMarker)
	}
	if cfg.Classification.DepartmentPolicy != "inclusive" {
		t.Errorf("DepartmentPolicy = %q", cfg.Classification.DepartmentPolicy)
	}
	if cfg.Capacity.MonthlyBudgetHours != 160 {
		t.Errorf("MonthlyBudgetHours = %v", cfg.Capacity.MonthlyBudgetHours)
	}
	if cfg.Formatter.TimeoutSeconds != 10 {
		t.Errorf("TimeoutSeconds = %d", cfg.Formatter.TimeoutSeconds)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Classification.ClientMarker != "[LSM]" {
		t.Errorf("expected defaults, got ClientMarker = %q", cfg.Classification.ClientMarker)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
data_dir = "/srv/logs"

[classification]
default_user_id = 7
client_marker = "[OPS]"
department_project_ids = [10, 11]
department_policy = "strict"

[capacity]
monthly_budget_hours = 120.0
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DataDir != "/srv/logs" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.Classification.ClientMarker != "[OPS]" {
		t.Errorf("ClientMarker = %q", cfg.Classification.ClientMarker)
	}
	if cfg.Classification.DepartmentPolicy != "strict" {
		t.Errorf("DepartmentPolicy = %q", cfg.Classification.DepartmentPolicy)
	}
	if cfg.Capacity.MonthlyBudgetHours != 120 {
		t.Errorf("MonthlyBudgetHours = %v", cfg.Capacity.MonthlyBudgetHours)
	}
	// Untouched values keep their defaults.
	if cfg.Capacity.ContractTotalHours != 1920 {
		t.Errorf("ContractTotalHours = %v", cfg.Capacity.ContractTotalHours)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not = [valid"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed TOML")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("STANDUP_DATA_DIR", "/tmp/override")
	t.Setenv("STANDUP_USER_ID", "99")
	t.Setenv("STANDUP_MONTHLY_BUDGET_HOURS", "80")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DataDir != "/tmp/override" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.Classification.DefaultUserID != 99 {
		t.Errorf("DefaultUserID = %d", cfg.Classification.DefaultUserID)
	}
	if cfg.Capacity.MonthlyBudgetHours != 80 {
		t.Errorf("MonthlyBudgetHours = %v", cfg.Capacity.MonthlyBudgetHours)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Capacity.MonthlyBudgetHours = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero monthly budget")
	}

	cfg = DefaultConfig()
	cfg.Classification.DepartmentPolicy = "lenient"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown department policy")
	}
}
