package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pfrederiksen/event-finder/internal/event"
)

// SortOrder represents the available sorting options
type SortOrder string

const (
	SortNone       SortOrder = ""
	SortByDate     SortOrder = "date"
	SortByName     SortOrder = "name"
	SortByCategory SortOrder = "category"
	SortByVenue    SortOrder = "venue"
)

// ParseSortOrder validates a --sort value
func ParseSortOrder(s string) (SortOrder, error) {
	order := SortOrder(strings.ToLower(strings.TrimSpace(s)))
	switch order {
	case SortNone, SortByDate, SortByName, SortByCategory, SortByVenue:
		return order, nil
	}
	return "", fmt.Errorf("invalid sort order: %s (must be date, name, category or venue)", s)
}

// sortRecords sorts records in place. The sort is stable, so ties keep
// their search order; SortNone leaves the slice untouched.
func sortRecords(records []event.Record, order SortOrder) {
	switch order {
	case SortByDate:
		sort.SliceStable(records, func(i, j int) bool {
			return compareByDate(records[i], records[j])
		})
	case SortByName:
		sort.SliceStable(records, func(i, j int) bool {
			return strings.ToLower(records[i].Name) < strings.ToLower(records[j].Name)
		})
	case SortByCategory:
		sort.SliceStable(records, func(i, j int) bool {
			if records[i].Category != records[j].Category {
				return records[i].Category < records[j].Category
			}
			// If categories are equal, sort by date
			return compareByDate(records[i], records[j])
		})
	case SortByVenue:
		sort.SliceStable(records, func(i, j int) bool {
			return strings.ToLower(records[i].Venue) < strings.ToLower(records[j].Venue)
		})
	}
}

// compareByDate compares two records by their date
// Returns true if record i should come before record j
func compareByDate(i, j event.Record) bool {
	dateI := i.Time()
	dateJ := j.Time()

	// If both dates are valid, compare them
	if !dateI.IsZero() && !dateJ.IsZero() {
		return dateI.Before(dateJ)
	}

	// If only one date is valid, put the valid one first
	if !dateI.IsZero() {
		return true
	}

	// Neither (or only j) has a valid date: keep the current order
	return false
}
