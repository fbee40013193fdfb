package timeutil

import (
	"fmt"
	"time"
)

// StartOfDay returns midnight (00:00:00) of the given day in the same timezone
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of the given day (23:59:59.999999999)
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Nanosecond)
}

// IsInRange checks if the given time t falls within the range [start, end] (inclusive)
func IsInRange(t, start, end time.Time) bool {
	return (t.Equal(start) || t.After(start)) && (t.Equal(end) || t.Before(end))
}

// LastNDays returns the inclusive range covering the N complete days ending
// on the day of now. LastNDays(1, now) covers today only.
func LastNDays(n int, now time.Time) (start, end time.Time) {
	if n < 1 {
		n = 1
	}
	return StartOfDay(now.AddDate(0, 0, -(n - 1))), EndOfDay(now)
}

// ParseDate parses a date string in YYYY-MM-DD or DD/MM/YYYY format.
// Returns the parsed date at midnight (start of day) in local timezone.
// For ambiguous dates, ISO format (YYYY-MM-DD) is preferred.
func ParseDate(input string) (time.Time, error) {
	if input == "" {
		return time.Time{}, fmt.Errorf("date cannot be empty (use format YYYY-MM-DD, e.g., 2025-01-15)")
	}

	// Try ISO format first (YYYY-MM-DD) - preferred for ambiguous dates
	t, err := time.ParseInLocation("2006-01-02", input, time.Local)
	if err == nil {
		return StartOfDay(t), nil
	}

	// Try European format (DD/MM/YYYY)
	t, err = time.ParseInLocation("02/01/2006", input, time.Local)
	if err == nil {
		return StartOfDay(t), nil
	}

	return time.Time{}, fmt.Errorf("invalid date format '%s' (use YYYY-MM-DD or DD/MM/YYYY, e.g., 2025-01-15 or 15/01/2025)", input)
}

// MonthKey returns the calendar-month key for a date, e.g. "2025-03".
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// MonthsBetween returns the inclusive count of calendar months from a to b.
// MonthsBetween(Jan, Jan) is 1; MonthsBetween(Jan, Mar) is 3.
// Returns 0 when b falls in a month before a's.
func MonthsBetween(a, b time.Time) int {
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month()) + 1
	if months < 0 {
		return 0
	}
	return months
}
