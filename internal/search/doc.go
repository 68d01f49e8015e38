// Package search coordinates one event search: it validates the request,
// builds the queries, fetches each one in turn, extracts and classifies the
// results and deduplicates the merged records.
//
// Queries run sequentially in build order. A query that fails is logged and
// skipped; it never aborts the search.
package search
