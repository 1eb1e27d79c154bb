package utils

import "time"

// StartOfDay truncates t to midnight in UTC. Scheduled dates travel as UTC
// midnights, so putting both sides of every day-granularity comparison through
// this keeps the math in one zone whatever the server clock runs in.
func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD wire value into a UTC midnight timestamp.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.UTC)
}
