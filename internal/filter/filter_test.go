package filter

import (
	"testing"

	"github.com/pfrederiksen/event-finder/internal/event"
)

func TestFilter_IsEmpty(t *testing.T) {
	tests := []struct {
		name   string
		filter *Filter
		want   bool
	}{
		{
			name:   "empty filter",
			filter: NewFilter(),
			want:   true,
		},
		{
			name:   "zero value",
			filter: &Filter{},
			want:   true,
		},
		{
			name:   "all category",
			filter: ForCategory(event.CategoryAll),
			want:   true,
		},
		{
			name:   "single category",
			filter: ForCategory(event.CategoryMusic),
			want:   false,
		},
		{
			name:   "event-like only",
			filter: &Filter{EventLikeOnly: true},
			want:   false,
		},
		{
			name:   "venue",
			filter: &Filter{Venues: []string{"Opera"}},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.IsEmpty(); got != tt.want {
				t.Errorf("Filter.IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_Matches(t *testing.T) {
	concert := event.Record{
		Name:        "Jazz Concert",
		Venue:       "Dubai Opera, Downtown",
		Description: "Evening show",
		Category:    event.CategoryMusic,
	}
	dinner := event.Record{
		Name:     "Rooftop Dinner",
		Venue:    "Marina",
		Category: event.CategoryOther,
	}

	tests := []struct {
		name   string
		filter *Filter
		record event.Record
		want   bool
	}{
		{"empty filter matches all", NewFilter(), dinner, true},
		{"category matches", ForCategory(event.CategoryMusic), concert, true},
		{"category does not match", ForCategory(event.CategoryMusic), dinner, false},
		{"one of several categories", &Filter{Categories: []event.Category{event.CategoryFood, event.CategoryOther}}, dinner, true},
		{"venue substring case-insensitive", &Filter{Venues: []string{"opera"}}, concert, true},
		{"venue does not match", &Filter{Venues: []string{"opera"}}, dinner, false},
		{"keyword in name", &Filter{Keywords: []string{"JAZZ"}}, concert, true},
		{"keyword missing", &Filter{Keywords: []string{"rock"}}, concert, false},
		{"event-like record", &Filter{EventLikeOnly: true}, concert, true},
		{"non-event-like record", &Filter{EventLikeOnly: true}, dinner, false},
		{
			name:   "all criteria must match",
			filter: &Filter{Categories: []event.Category{event.CategoryMusic}, Venues: []string{"marina"}},
			record: concert,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(tt.record); got != tt.want {
				t.Errorf("Filter.Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_Apply(t *testing.T) {
	records := []event.Record{
		{Name: "A", Category: event.CategoryMusic},
		{Name: "B", Category: event.CategoryFood},
		{Name: "C", Category: event.CategoryMusic},
	}

	t.Run("empty filter returns input", func(t *testing.T) {
		got := NewFilter().Apply(records)
		if len(got) != len(records) {
			t.Errorf("Apply() returned %d records, want %d", len(got), len(records))
		}
	})

	t.Run("category filter preserves order", func(t *testing.T) {
		got := ForCategory(event.CategoryMusic).Apply(records)
		if len(got) != 2 {
			t.Fatalf("Apply() returned %d records, want 2", len(got))
		}
		if got[0].Name != "A" || got[1].Name != "C" {
			t.Errorf("Apply() = %v, want [A C]", got)
		}
	})

	t.Run("no matches", func(t *testing.T) {
		got := ForCategory(event.CategorySports).Apply(records)
		if got == nil || len(got) != 0 {
			t.Errorf("Apply() = %v, want empty slice", got)
		}
	})
}

func TestFilter_String(t *testing.T) {
	tests := []struct {
		name   string
		filter *Filter
		want   string
	}{
		{"empty", NewFilter(), "No active filters"},
		{"category", ForCategory(event.CategoryMusic), "Categories: music"},
		{
			name: "combined",
			filter: &Filter{
				Categories:    []event.Category{event.CategoryMusic, event.CategoryArts},
				Venues:        []string{"Opera"},
				Keywords:      []string{"jazz"},
				EventLikeOnly: true,
			},
			want: "Categories: music, arts | Venues: Opera | Keywords: jazz | Event-like only",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.String(); got != tt.want {
				t.Errorf("Filter.String() = %q, want %q", got, tt.want)
			}
		})
	}
}
