package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pfrederiksen/event-finder/internal/calendar"
	"github.com/pfrederiksen/event-finder/internal/event"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
	FormatCSV   OutputFormat = "csv"
	FormatICS   OutputFormat = "ics"
)

// maxCellWidth bounds free-text columns in table output
const maxCellWidth = 60

// ParseFormat validates a --format value
func ParseFormat(s string) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	switch format {
	case FormatTable, FormatJSON, FormatCSV, FormatICS:
		return format, nil
	}
	return "", fmt.Errorf("invalid format: %s (must be table, json, csv or ics)", s)
}

// OutputResult contains data to be output
type OutputResult struct {
	SearchedAt time.Time      `json:"searched_at"`
	Location   string         `json:"location"`
	Category   event.Category `json:"category"`
	StartDate  string         `json:"start_date"`
	EndDate    string         `json:"end_date"`
	Queries    int            `json:"queries"`
	Failed     int            `json:"failed_queries"`
	EventCount int            `json:"event_count"`
	Events     []event.Record `json:"events"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatCSV:
		return writeCSV(w, result.Events)
	case FormatICS:
		return writeICS(w, result)
	case FormatTable:
		return writeTable(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	if result.Events == nil {
		result.Events = []event.Record{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeCSV outputs records with a header row and no index column
func writeCSV(w io.Writer, records []event.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(event.Columns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(r.Values()); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeICS outputs records with parseable dates as an iCalendar feed
func writeICS(w io.Writer, result *OutputResult) error {
	name := fmt.Sprintf("Events in %s", result.Location)
	ics, _ := calendar.Generate(result.Events, name)
	_, err := io.WriteString(w, ics)
	return err
}

// writeTable outputs results as a human-readable table
func writeTable(w io.Writer, result *OutputResult) error {
	if result.EventCount == 0 {
		_, err := fmt.Fprintln(w, "No events found.")
		return err
	}

	rows := make([][]string, 0, len(result.Events))
	for _, r := range result.Events {
		rows = append(rows, []string{
			truncate(r.Name, maxCellWidth),
			r.Date,
			truncate(r.Venue, maxCellWidth),
			r.Category.Label(),
			r.Link,
		})
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "DATE", "VENUE", "CATEGORY", "LINK").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	fmt.Fprintf(w, "Found %d events!\n", result.EventCount)
	fmt.Fprintln(w, t.String())
	if result.Failed > 0 {
		fmt.Fprintf(w, "\n%d of %d queries failed; results may be incomplete.\n", result.Failed, result.Queries)
	}

	return nil
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
