package serpapi

import "github.com/pfrederiksen/event-finder/internal/event"

// Extract maps the events_results entries of a result onto event records.
// A result without events yields no records. Absent fields fall back to
// "Unknown" (name), "Not specified" (date), the query location (venue) and
// the empty string (description, link). Present fields are stored as received.
func Extract(result *Result, location string) []event.Record {
	if result == nil || len(result.EventsResults) == 0 {
		return nil
	}

	records := make([]event.Record, 0, len(result.EventsResults))
	for _, e := range result.EventsResults {
		records = append(records, event.Record{
			Name:        e.Title.Or(event.UnknownName),
			Date:        e.Date.Or(event.UnknownDate),
			Venue:       e.Address.Or(location),
			Description: e.Description.Or(""),
			Link:        e.Link.Or(""),
			Category:    event.Classify(e.Title.Or("")),
		})
	}

	return records
}
