package util

import (
	"time"
)

const secondsPerDay = 24 * 60 * 60

// TruncateToDay returns midnight UTC of the calendar day of t (in t's location).
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysSinceEpoch projects t to a numeric x-axis value: days since
// 1970-01-01 UTC, fractional for times other than midnight.
func DaysSinceEpoch(t time.Time) float64 {
	sec := t.Unix()
	frac := float64(t.Nanosecond()) / 1e9
	return (float64(sec) + frac) / secondsPerDay
}
