package query

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pfrederiksen/event-finder/internal/event"
)

// locationPattern accepts ASCII letters, whitespace, comma, period and hyphen, 2 to 50 characters.
// \pZ admits Unicode spaces such as NBSP, which RE2's \s does not cover.
var locationPattern = regexp.MustCompile(`^[A-Za-z\pZ\s,.\-]{2,50}$`)

// template renders a query from a location and a "start to end" date range
type template func(location, dateRange string) string

func withRange(prefix string) template {
	return func(location, dateRange string) string {
		return fmt.Sprintf("%s %s %s", prefix, location, dateRange)
	}
}

func prefixed(prefix string) template {
	return func(location, _ string) string {
		return fmt.Sprintf("%s %s", prefix, location)
	}
}

func suffixed(suffix string) template {
	return func(location, _ string) string {
		return fmt.Sprintf("%s %s", location, suffix)
	}
}

// categoryTemplates holds the per-category query phrases, in the order used for "all".
// Categories without an entry contribute only the generic queries.
var categoryTemplates = []struct {
	category  event.Category
	templates []template
}{
	{event.CategoryMusic, []template{withRange("concerts"), prefixed("music events"), prefixed("live music")}},
	{event.CategoryConference, []template{withRange("conferences"), prefixed("business events"), prefixed("tech events")}},
	{event.CategoryFestival, []template{withRange("festivals"), prefixed("cultural events"), suffixed("festivals")}},
	{event.CategorySports, []template{withRange("sports events"), suffixed("sports games"), prefixed("fitness events")}},
}

// genericTemplates are appended to every query set
var genericTemplates = []template{
	withRange("events"),
	prefixed("things to do"),
	prefixed("upcoming events"),
}

// Build returns the search queries for a location, date range and category.
// Dates are used verbatim. The result always ends with the generic queries
// and may contain duplicates.
func Build(location, startDate, endDate string, category event.Category) []string {
	dateRange := fmt.Sprintf("%s to %s", startDate, endDate)

	var queries []string
	for _, ct := range categoryTemplates {
		if category != event.CategoryAll && category != ct.category {
			continue
		}
		for _, tmpl := range ct.templates {
			queries = append(queries, tmpl(location, dateRange))
		}
	}

	for _, tmpl := range genericTemplates {
		queries = append(queries, tmpl(location, dateRange))
	}

	return queries
}

// ValidateLocation reports whether a location is acceptable for searching.
// Surrounding whitespace is ignored.
func ValidateLocation(location string) bool {
	return locationPattern.MatchString(strings.TrimSpace(location))
}
