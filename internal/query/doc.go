// Package query expands a location, date range and category into the search
// strings sent to the search provider, and validates the location input.
package query
