package entry

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Record is the raw JSON shape of a time entry as exported by the
// time-tracking API. Optional fields are pointers/nil slices; Normalize
// validates a Record once at the ingestion boundary so the rest of the
// code never needs defensive nil checks.
type Record struct {
	ID          int64    `json:"id"`
	Date        string   `json:"date"`
	Minutes     int      `json:"minutes"`
	Description string   `json:"description"`
	User        User     `json:"user"`
	Project     *Project `json:"project"`
	Tags        []Tag    `json:"tags"`
}

// inlineTagPattern matches legacy #tag syntax embedded in descriptions
// (e.g., "#internal", "#client-work"). Older exports carried labels this
// way before the API grew a structured tag list.
var inlineTagPattern = regexp.MustCompile(`#([a-zA-Z0-9_-]+)`)

// Normalize validates a raw Record and converts it into an Entry.
// A nil project becomes a zero-valued Project, the date string is parsed,
// and legacy inline #labels in the description are merged into the tag
// list (structured tags first, in order, without duplicates).
func Normalize(r Record) (Entry, error) {
	if r.ID == 0 {
		return Entry{}, fmt.Errorf("entry has no id")
	}
	if r.Minutes < 0 {
		return Entry{}, fmt.Errorf("entry %d has negative duration %d", r.ID, r.Minutes)
	}

	date, err := time.ParseInLocation("2006-01-02", r.Date, time.Local)
	if err != nil {
		return Entry{}, fmt.Errorf("entry %d has invalid date %q: %w", r.ID, r.Date, err)
	}

	e := Entry{
		ID:          r.ID,
		Date:        date,
		Minutes:     r.Minutes,
		Description: strings.TrimSpace(r.Description),
		User:        r.User,
	}
	if r.Project != nil {
		e.Project = *r.Project
	}

	seen := make(map[string]bool)
	for _, tag := range r.Tags {
		name := strings.TrimSpace(tag.Name)
		if name == "" || seen[strings.ToLower(name)] {
			continue
		}
		seen[strings.ToLower(name)] = true
		e.Tags = append(e.Tags, name)
	}
	for _, match := range inlineTagPattern.FindAllStringSubmatch(r.Description, -1) {
		name := match[1]
		if seen[strings.ToLower(name)] {
			continue
		}
		seen[strings.ToLower(name)] = true
		e.Tags = append(e.Tags, name)
	}

	return e, nil
}
