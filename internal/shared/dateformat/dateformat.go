// Package dateformat converts timestamp strings into human-readable display
// strings for rendered pages.
package dateformat

import (
	"strings"
	"time"
)

// InvalidDate is returned when the input cannot be parsed as a date.
const InvalidDate = "Invalid Date"

// parseLayouts lists the accepted input layouts, tried in order.
var parseLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Parse parses an ISO-ish date/time string.
func Parse(value string) (time.Time, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a date string as "Mar 5, 2024".
// Malformed input yields InvalidDate rather than an error.
func FormatDate(value string) string {
	t, ok := Parse(value)
	if !ok {
		return InvalidDate
	}
	return t.Format("Jan 2, 2006")
}

// FormatDateTime renders a date/time string as "Mar 5, 2024 14:30".
// Malformed input yields InvalidDate rather than an error.
func FormatDateTime(value string) string {
	t, ok := Parse(value)
	if !ok {
		return InvalidDate
	}
	return t.Format("Jan 2, 2006 15:04")
}

// FormatTimeDate renders a time.Time as "Mar 5, 2024".
func FormatTimeDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// FormatTimeDateTime renders a time.Time as "Mar 5, 2024 14:30".
func FormatTimeDateTime(t time.Time) string {
	return t.Format("Jan 2, 2006 15:04")
}
