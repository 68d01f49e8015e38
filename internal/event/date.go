package event

import (
	"strings"
	"time"
)

// dateLayouts are tried in order by ParseDate
var dateLayouts = []string{
	"2006-01-02",
	"Jan 2, 2006",
	"January 2, 2006",
	"Mon, Jan 2, 2006",
	"Jan 2 2006",
	"01/02/2006",
	"1/2/06",
}

// yearlessLayouts lack a year; the current year is assumed
var yearlessLayouts = []string{
	"Mon, Jan 2",
	"Jan 2",
	"January 2",
}

// ParseDate attempts to parse free-form event date text into a time.Time.
// Returns time.Time{} (zero value) if parsing fails.
// Provider text such as "Sat, Dec 7, 7 – 10 PM" is parsed by its leading
// date, everything after the second comma is ignored.
func ParseDate(dateText string) time.Time {
	text := strings.TrimSpace(dateText)
	if text == "" || text == UnknownDate {
		return time.Time{}
	}

	for _, candidate := range candidates(text) {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, candidate); err == nil {
				return t
			}
		}

		for _, layout := range yearlessLayouts {
			if t, err := time.Parse(layout, candidate); err == nil {
				now := time.Now()
				return time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			}
		}
	}

	return time.Time{}
}

// candidates returns the full text followed by its comma-separated prefixes
func candidates(text string) []string {
	out := []string{text}
	parts := strings.Split(text, ",")
	for i := len(parts) - 1; i > 0; i-- {
		out = append(out, strings.TrimSpace(strings.Join(parts[:i], ",")))
	}
	return out
}

// Time returns the parsed record date, or the zero time when unparseable
func (r Record) Time() time.Time {
	return ParseDate(r.Date)
}
