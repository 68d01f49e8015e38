// Package filter narrows a list of event records after deduplication.
//
// Criteria are combined with AND; within one criterion any value may match:
//   - Categories: record category equals one of the listed categories
//   - Venues: record venue contains one of the values (case-insensitive)
//   - Keywords: record name contains one of the values (case-insensitive)
//   - EventLikeOnly: name and description look like an event listing
//
// An empty filter matches every record, so applying it leaves the pipeline
// output unchanged.
//
// Example usage:
//
//	f := filter.NewFilter()
//	f.Categories = []event.Category{event.CategoryMusic}
//	f.EventLikeOnly = true
//
//	filtered := f.Apply(records)
package filter

import (
	"fmt"
	"strings"

	"github.com/pfrederiksen/event-finder/internal/event"
)

// Filter represents record filtering criteria
type Filter struct {
	Categories    []event.Category `json:"categories,omitempty"`
	Venues        []string         `json:"venues,omitempty"`
	Keywords      []string         `json:"keywords,omitempty"`
	EventLikeOnly bool             `json:"event_like_only,omitempty"`
}

// NewFilter creates a new empty filter with no active criteria.
func NewFilter() *Filter {
	return &Filter{
		Categories: []event.Category{},
		Venues:     []string{},
		Keywords:   []string{},
	}
}

// ForCategory returns a filter restricted to a single category.
// CategoryAll yields an empty filter.
func ForCategory(c event.Category) *Filter {
	f := NewFilter()
	if c != event.CategoryAll && c != "" {
		f.Categories = append(f.Categories, c)
	}
	return f
}

// IsEmpty checks if the filter has any active criteria.
func (f *Filter) IsEmpty() bool {
	return len(f.Categories) == 0 &&
		len(f.Venues) == 0 &&
		len(f.Keywords) == 0 &&
		!f.EventLikeOnly
}

// Matches checks if a record matches all active filter criteria.
// An empty filter matches all records.
func (f *Filter) Matches(r event.Record) bool {
	if f.IsEmpty() {
		return true
	}

	if len(f.Categories) > 0 {
		matched := false
		for _, c := range f.Categories {
			if r.Category == c {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if len(f.Venues) > 0 && !containsFold(r.Venue, f.Venues) {
		return false
	}

	if len(f.Keywords) > 0 && !containsFold(r.Name, f.Keywords) {
		return false
	}

	if f.EventLikeOnly && !event.IsEventLike(r.Name, r.Description) {
		return false
	}

	return true
}

// Apply returns only matching records, preserving order.
// If the filter is empty, returns the original list unchanged.
func (f *Filter) Apply(records []event.Record) []event.Record {
	if f.IsEmpty() {
		return records
	}

	filtered := make([]event.Record, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			filtered = append(filtered, r)
		}
	}

	return filtered
}

// String returns a human-readable description of the active filter criteria.
// Format: "Categories: music | Venues: Opera | Event-like only"
func (f *Filter) String() string {
	if f.IsEmpty() {
		return "No active filters"
	}

	var parts []string

	if len(f.Categories) > 0 {
		names := make([]string, len(f.Categories))
		for i, c := range f.Categories {
			names[i] = string(c)
		}
		parts = append(parts, fmt.Sprintf("Categories: %s", strings.Join(names, ", ")))
	}

	if len(f.Venues) > 0 {
		parts = append(parts, fmt.Sprintf("Venues: %s", strings.Join(f.Venues, ", ")))
	}

	if len(f.Keywords) > 0 {
		parts = append(parts, fmt.Sprintf("Keywords: %s", strings.Join(f.Keywords, ", ")))
	}

	if f.EventLikeOnly {
		parts = append(parts, "Event-like only")
	}

	return strings.Join(parts, " | ")
}

// containsFold reports whether s contains any of the values, ignoring case
func containsFold(s string, values []string) bool {
	lower := strings.ToLower(s)
	for _, v := range values {
		if strings.Contains(lower, strings.ToLower(v)) {
			return true
		}
	}
	return false
}
