// Package event provides the normalized event record and the pure functions
// that operate on it.
//
// Records are produced from search provider responses, labelled with a
// category by keyword matching (Classify), screened with IsEventLike, and
// collapsed with Deduplicate using a case- and whitespace-insensitive
// (name, date) identity key.
package event
