package helpers

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts are tried in order by ParseDate
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"02.01.2006",
	"01/02/2006",
}

// ParseDate parses the date formats found in the classwork input files.
// The result is truncated to midnight UTC.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return DateOnly(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// Date builds a midnight UTC date
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOnly drops the clock part of t
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDate renders t the way reports print dates
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

// Clock returns the current time. Services take one so tests can pin "now".
type Clock func() time.Time

// SystemClock is the wall clock
func SystemClock() time.Time {
	return time.Now()
}

// FixedClock always returns t
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}
