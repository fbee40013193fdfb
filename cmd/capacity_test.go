package cmd

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCapacitySummary(t *testing.T) {
	dataDir := t.TempDir()
	writeSnapshot(t, dataDir, "Department", "export-2026-03-15.json",
		`[{"id": 1, "date": "2026-03-15", "minutes": 76800, "description": "steady work",
		   "user": {"id": 7, "first_name": "Jane", "last_name": "Doe"}}]`)

	stdout, _, _ := setTestDeps(t, testConfig(dataDir))

	runCapacity("summary", nil)

	out := stdout.String()
	for _, want := range []string{
		"# Capacity Report",
		"Months analyzed: 8",
		"Utilization: 100.0%",
		"## Recommendation",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestCapacityJSON(t *testing.T) {
	dataDir := t.TempDir()
	writeSnapshot(t, dataDir, "Department", "export-2026-03-15.json",
		`[{"id": 1, "date": "2026-03-15", "minutes": 76800, "description": "steady work",
		   "user": {"id": 7, "first_name": "Jane", "last_name": "Doe"}}]`)

	stdout, _, _ := setTestDeps(t, testConfig(dataDir))

	runCapacity("json", nil)

	var decoded map[string]any
	if err := json.Unmarshal(stdout.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, stdout.String())
	}
	if decoded["utilization_pct"].(float64) != 100.0 {
		t.Errorf("utilization_pct = %v", decoded["utilization_pct"])
	}
}

func TestCapacityNoData(t *testing.T) {
	stdout, _, _ := setTestDeps(t, testConfig(t.TempDir()))

	runCapacity("summary", nil)

	out := stdout.String()
	if !strings.Contains(out, "No entries found") {
		t.Errorf("expected explicit no-data report:\n%s", out)
	}
	if strings.Contains(out, "NaN") || strings.Contains(out, "Inf") {
		t.Errorf("no-data report carries NaN/Inf:\n%s", out)
	}
}

func TestCapacityDateRangeArgs(t *testing.T) {
	dataDir := t.TempDir()
	writeSnapshot(t, dataDir, "Department", "export-2026-03-15.json",
		`[{"id": 1, "date": "2026-03-15", "minutes": 60, "description": "in range",
		   "user": {"id": 7, "first_name": "Jane", "last_name": "Doe"}},
		  {"id": 2, "date": "2026-05-15", "minutes": 60, "description": "after range",
		   "user": {"id": 7, "first_name": "Jane", "last_name": "Doe"}}]`)

	stdout, _, _ := setTestDeps(t, testConfig(dataDir))

	runCapacity("detailed", []string{"2026-03-01", "2026-03-31"})

	out := stdout.String()
	if !strings.Contains(out, "| 2026-03 |") {
		t.Errorf("in-range month missing:\n%s", out)
	}
	if strings.Contains(out, "| 2026-05 |") {
		t.Errorf("out-of-range month leaked into report:\n%s", out)
	}
}

func TestCapacityInvalidDate(t *testing.T) {
	_, stderr, exitCode := setTestDeps(t, testConfig(t.TempDir()))

	runCapacity("summary", []string{"not-a-date"})

	if *exitCode != 1 {
		t.Errorf("exit code = %d, want 1", *exitCode)
	}
	if !strings.Contains(stderr.String(), "Invalid start date") {
		t.Errorf("missing error message:\n%s", stderr.String())
	}
}

func TestCapacityBothPrintsSummaryAndDetailed(t *testing.T) {
	dataDir := t.TempDir()
	writeSnapshot(t, dataDir, "Department", "export-2026-03-15.json",
		`[{"id": 1, "date": "2026-03-15", "minutes": 60, "description": "work",
		   "user": {"id": 7, "first_name": "Jane", "last_name": "Doe"}}]`)

	stdout, _, _ := setTestDeps(t, testConfig(dataDir))

	runCapacity("both", nil)

	out := stdout.String()
	if strings.Count(out, "# Capacity Report") != 2 {
		t.Errorf("expected summary and detailed reports:\n%s", out)
	}
	if !strings.Contains(out, "## By team member") {
		t.Errorf("detailed sections missing:\n%s", out)
	}
}
