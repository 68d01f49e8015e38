package event

import (
	"crypto/sha1"
	"fmt"
	"strings"
)

// Placeholders used when a provider entry omits a field
const (
	UnknownName = "Unknown"
	UnknownDate = "Not specified"
)

// Record represents a single event found by a search
type Record struct {
	Name        string   `json:"name"`
	Date        string   `json:"date"` // Free-form provider text, never parsed for identity
	Venue       string   `json:"venue"`
	Description string   `json:"description"`
	Link        string   `json:"link"`
	Category    Category `json:"category"`
}

// Columns lists the export column names in field order
var Columns = []string{"name", "date", "venue", "description", "link", "category"}

// Values returns the record fields in Columns order
func (r Record) Values() []string {
	return []string{r.Name, r.Date, r.Venue, r.Description, r.Link, string(r.Category)}
}

// Identity is the deduplication key of a record
type Identity struct {
	Name string
	Date string
}

// Key returns the identity used for deduplication: name and date,
// lower-cased and trimmed. Venue, description and link are not part of it.
func (r Record) Key() Identity {
	return Identity{Name: normalize(r.Name), Date: normalize(r.Date)}
}

// ID returns a deterministic SHA1 identifier derived from Key
func (r Record) ID() string {
	key := r.Key()
	h := sha1.New()
	h.Write([]byte(key.Name + "\x00" + key.Date))
	return fmt.Sprintf("%x", h.Sum(nil))
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
