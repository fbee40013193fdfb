package entry

import (
	"fmt"
	"strings"
	"time"
)

// User is the author of a time entry.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// DisplayName formats a user as "First L." for report lines.
// Falls back to the first name alone when no last name is recorded.
func (u User) DisplayName() string {
	first := strings.TrimSpace(u.FirstName)
	last := strings.TrimSpace(u.LastName)
	if last == "" {
		return first
	}
	return fmt.Sprintf("%s %s.", first, last[:1])
}

// Project is the bucket a time entry was logged against.
// Name may carry a bracketed department marker prefix such as "[LSM]".
type Project struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Tag is a structured label attached to a time entry.
type Tag struct {
	Name string `json:"name"`
}

// Entry is a normalized time entry. Produced by Normalize from a raw
// Record; downstream code can assume the project is present (possibly
// zero-valued), the date is valid, and legacy inline labels have been
// merged into Tags.
type Entry struct {
	ID          int64
	Date        time.Time
	Minutes     int
	Description string
	User        User
	Project     Project
	Tags        []string
}

// HasTagContaining reports whether any of the entry's tags contains one of
// the given markers, case-insensitively.
func (e Entry) HasTagContaining(markers []string) bool {
	for _, tag := range e.Tags {
		lower := strings.ToLower(tag)
		for _, marker := range markers {
			if marker != "" && strings.Contains(lower, strings.ToLower(marker)) {
				return true
			}
		}
	}
	return false
}

// FormatDuration formats minutes as a human-readable string
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}
