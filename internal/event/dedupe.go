package event

// Deduplicate removes records sharing an identity key, keeping the first
// occurrence and the original relative order. Later duplicates are dropped
// even when their venue, description or link differ.
func Deduplicate(records []Record) []Record {
	seen := make(map[Identity]bool, len(records))
	unique := make([]Record, 0, len(records))
	for _, r := range records {
		key := r.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, r)
	}
	return unique
}
