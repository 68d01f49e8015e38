package serpapi

import (
	"encoding/json"
	"strings"
)

// Result is the decoded SerpApi response. Only the fields the extractor
// consults are mapped.
type Result struct {
	EventsResults []RawEvent `json:"events_results"`
	Error         string     `json:"error,omitempty"`
}

// RawEvent is one entry of events_results. Every field is optional.
type RawEvent struct {
	Title       Text `json:"title"`
	Date        Text `json:"date"`
	Address     Text `json:"address"`
	Description Text `json:"description"`
	Link        Text `json:"link"`
}

// Text is a provider field that may be absent, a string, a list of strings
// (address lines) or an object with "when"/"start_date" (event dates).
type Text struct {
	Value string
	Set   bool
}

// NewText returns a present Text holding s
func NewText(s string) Text {
	return Text{Value: s, Set: true}
}

// Or returns the value when the field was present, otherwise fallback
func (t Text) Or(fallback string) string {
	if !t.Set {
		return fallback
	}
	return t.Value
}

// UnmarshalJSON implements json.Unmarshaler
func (t *Text) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*t = Text{}
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = NewText(s)
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		// Non-string entries are skipped rather than failing the response
		var lines []string
		for _, item := range items {
			var line string
			if string(item) != "null" && json.Unmarshal(item, &line) == nil {
				lines = append(lines, line)
			}
		}
		if len(lines) == 0 {
			*t = Text{}
			return nil
		}
		*t = NewText(strings.Join(lines, ", "))
	case '{':
		var d struct {
			When      string `json:"when"`
			StartDate string `json:"start_date"`
		}
		if err := json.Unmarshal(data, &d); err != nil {
			return err
		}
		switch {
		case d.When != "":
			*t = NewText(d.When)
		case d.StartDate != "":
			*t = NewText(d.StartDate)
		default:
			*t = Text{}
		}
	default:
		// Numbers and booleans are kept as their literal text
		*t = NewText(trimmed)
	}
	return nil
}

// MarshalJSON implements json.Marshaler
func (t Text) MarshalJSON() ([]byte, error) {
	if !t.Set {
		return []byte("null"), nil
	}
	return json.Marshal(t.Value)
}
