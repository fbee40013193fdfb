package entry

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{59, "59m"},
		{60, "1h"},
		{120, "2h"},
		{125, "2h 5m"},
		{90, "1h 30m"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.minutes); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestUserDisplayName(t *testing.T) {
	tests := []struct {
		name string
		user User
		want string
	}{
		{"first and last", User{FirstName: "Jane", LastName: "Doe"}, "Jane D."},
		{"no last name", User{FirstName: "Jane"}, "Jane"},
		{"whitespace last name", User{FirstName: "Jane", LastName: "  "}, "Jane"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHasTagContaining(t *testing.T) {
	e := Entry{Tags: []string{"Internal-Meeting", "review"}}

	if !e.HasTagContaining([]string{"internal"}) {
		t.Error("expected case-insensitive substring match on 'internal'")
	}
	if e.HasTagContaining([]string{"sales"}) {
		t.Error("did not expect a match on 'sales'")
	}
	if e.HasTagContaining(nil) {
		t.Error("empty marker list must never match")
	}
}

func TestNormalize(t *testing.T) {
	r := Record{
		ID:          42,
		Date:        "2026-08-28",
		Minutes:     90,
		Description: "ship feature #internal #Internal #review",
		User:        User{ID: 7, FirstName: "Jane", LastName: "Doe"},
		Project:     &Project{ID: 3, Name: "[LSM] Foo Client Retainer"},
		Tags:        []Tag{{Name: "review"}, {Name: ""}},
	}

	e, err := Normalize(r)
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}

	wantDate := time.Date(2026, 8, 28, 0, 0, 0, 0, time.Local)
	if !e.Date.Equal(wantDate) {
		t.Errorf("Date = %v, want %v", e.Date, wantDate)
	}
	if e.Project.Name != "[LSM] Foo Client Retainer" {
		t.Errorf("Project.Name = %q", e.Project.Name)
	}

	// Structured tags come first; legacy inline labels are merged without
	// duplicates (case-insensitive).
	wantTags := []string{"review", "internal"}
	if len(e.Tags) != len(wantTags) {
		t.Fatalf("Tags = %v, want %v", e.Tags, wantTags)
	}
	for i, tag := range wantTags {
		if e.Tags[i] != tag {
			t.Errorf("Tags[%d] = %q, want %q", i, e.Tags[i], tag)
		}
	}
}

func TestNormalizeNilProject(t *testing.T) {
	e, err := Normalize(Record{ID: 1, Date: "2026-01-02", Minutes: 30})
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	if e.Project.ID != 0 || e.Project.Name != "" {
		t.Errorf("expected zero-valued project, got %+v", e.Project)
	}
}

func TestNormalizeInvalid(t *testing.T) {
	tests := []struct {
		name   string
		record Record
	}{
		{"missing id", Record{Date: "2026-01-02", Minutes: 30}},
		{"bad date", Record{ID: 1, Date: "01-02-2026", Minutes: 30}},
		{"negative minutes", Record{ID: 1, Date: "2026-01-02", Minutes: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Normalize(tt.record); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
