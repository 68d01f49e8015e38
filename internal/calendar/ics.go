package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/event-finder/internal/event"
)

const prodID = "-//Event Finder//event-finder//EN"

// Generate builds a calendar with one all-day VEVENT per record whose date
// can be parsed. Records with unparseable dates are left out and counted in
// skipped. An empty name omits X-WR-CALNAME.
func Generate(records []event.Record, name string) (ics string, skipped int) {
	var b strings.Builder

	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:" + prodID + "\r\n")
	b.WriteString("CALSCALE:GREGORIAN\r\n")
	b.WriteString("METHOD:PUBLISH\r\n")
	if name != "" {
		b.WriteString(fmt.Sprintf("X-WR-CALNAME:%s\r\n", escapeICS(name)))
	}

	now := time.Now().UTC()
	for _, r := range records {
		date := r.Time()
		if date.IsZero() {
			skipped++
			continue
		}
		writeEvent(&b, r, date, now)
	}

	b.WriteString("END:VCALENDAR\r\n")

	return b.String(), skipped
}

func writeEvent(b *strings.Builder, r event.Record, date, stamp time.Time) {
	b.WriteString("BEGIN:VEVENT\r\n")

	// UID is derived from the dedup identity so re-exports update, not duplicate
	b.WriteString(fmt.Sprintf("UID:%s@event-finder\r\n", r.ID()))
	b.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", formatICSTime(stamp)))
	b.WriteString(fmt.Sprintf("DTSTART;VALUE=DATE:%s\r\n", formatICSDate(date)))
	b.WriteString(fmt.Sprintf("DTEND;VALUE=DATE:%s\r\n", formatICSDate(date.AddDate(0, 0, 1))))
	b.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(r.Name)))

	description := fmt.Sprintf("Date: %s\nCategory: %s", r.Date, r.Category.Label())
	if text := plainText(r.Description); text != "" {
		description = text + "\n\n" + description
	}
	b.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(description)))

	if r.Venue != "" {
		b.WriteString(fmt.Sprintf("LOCATION:%s\r\n", escapeICS(r.Venue)))
	}
	if r.Link != "" {
		b.WriteString(fmt.Sprintf("URL:%s\r\n", r.Link))
	}
	b.WriteString(fmt.Sprintf("CATEGORIES:%s\r\n", escapeICS(string(r.Category))))
	b.WriteString("TRANSP:TRANSPARENT\r\n")

	b.WriteString("END:VEVENT\r\n")
}

// formatICSTime formats a time.Time as an iCalendar UTC datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// formatICSDate formats a time.Time as an iCalendar DATE value
func formatICSDate(t time.Time) string {
	return t.Format("20060102")
}

// escapeICS escapes special characters for iCalendar format
func escapeICS(s string) string {
	// Replace special characters according to RFC 5545
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
