package classify

import (
	"fmt"
	"strings"

	"github.com/askeland/standup/internal/entry"
)

// Render formats buckets as plain text for the status-report flow: a
// heading per bucket followed by one line per entry. Returns the empty
// string when no bucket has entries; callers substitute their own
// "no updates" fallback text.
func Render(buckets []Bucket) string {
	var sb strings.Builder

	for _, b := range buckets {
		if len(b.Entries) == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("## %s (%s)\n", b.Name, entry.FormatDuration(b.TotalMinutes())))
		for _, e := range b.Entries {
			sb.WriteString(RenderLine(e))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// RenderLine formats a single entry as
// "<duration> - <First> <L>.: <description> (<date>)".
func RenderLine(e entry.Entry) string {
	return fmt.Sprintf("%s - %s: %s (%s)",
		entry.FormatDuration(e.Minutes),
		e.User.DisplayName(),
		e.Description,
		e.Date.Format("2006-01-02"))
}
