// Package serpapi fetches Google search results through SerpApi and extracts
// event records from them.
//
// The Client issues one GET per query against the search endpoint and decodes
// the JSON body into a Result. Extract reads the events_results collection of
// a Result and maps each entry onto an event.Record, applying the field
// fallbacks (name "Unknown", date "Not specified", venue = query location) and
// the keyword classifier. Everything else in the response is ignored.
package serpapi
