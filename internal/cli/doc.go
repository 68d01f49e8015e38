// Package cli implements the command-line interface for event-finder.
//
// The cli package provides the Cobra-based CLI: it merges configuration and
// flags, validates the search request, runs the search pipeline against
// SerpApi and renders the records as a table, JSON, CSV or iCalendar export.
// It coordinates the config, search, serpapi, filter, metrics and calendar
// packages.
package cli
