package models

import (
	"strings"
	"time"
)

// DateFormat is the calendar date layout used by the source files and the API
const DateFormat = "2006-01-02"

// ParseFlexibleDate parses both RFC3339 and "YYYY-MM-DD" formats.
// A date-only value is midnight UTC of that day.
func ParseFlexibleDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	// Try parsing as RFC3339 full timestamp first
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}

	// If that fails, try parsing as a date-only string
	return time.Parse(DateFormat, s)
}
