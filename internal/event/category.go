package event

import (
	"fmt"
	"strings"
)

// Category labels a record by the kind of event it describes
type Category string

const (
	CategoryAll        Category = "all"
	CategoryMusic      Category = "music"
	CategoryConference Category = "conference"
	CategoryFestival   Category = "festival"
	CategorySports     Category = "sports"
	CategoryArts       Category = "arts"
	CategoryFood       Category = "food"
	CategoryFamily     Category = "family"
	CategoryComedy     Category = "comedy"
	CategoryExhibition Category = "exhibition"
	CategoryOther      Category = "other"
)

// selectable is the fixed set of categories a search can be scoped to, in display order
var selectable = []struct {
	category Category
	label    string
}{
	{CategoryAll, "All Events"},
	{CategoryMusic, "Concerts & Music"},
	{CategoryConference, "Conferences & Business"},
	{CategoryFestival, "Festivals & Cultural"},
	{CategorySports, "Sports & Fitness"},
	{CategoryArts, "Arts & Theater"},
	{CategoryFood, "Food & Drink"},
	{CategoryFamily, "Family & Kids"},
	{CategoryComedy, "Comedy Shows"},
	{CategoryExhibition, "Exhibitions & Expos"},
}

// Categories returns the selectable categories in display order.
// CategoryOther is a classification result only and is not included.
func Categories() []Category {
	out := make([]Category, len(selectable))
	for i, s := range selectable {
		out[i] = s.category
	}
	return out
}

// Label returns the display label for a category
func (c Category) Label() string {
	for _, s := range selectable {
		if s.category == c {
			return s.label
		}
	}
	if c == CategoryOther {
		return "Other"
	}
	return string(c)
}

// IsSelectable reports whether a search may be scoped to c
func (c Category) IsSelectable() bool {
	for _, s := range selectable {
		if s.category == c {
			return true
		}
	}
	return false
}

// ParseCategory converts user input into a selectable Category
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if c == "" {
		return CategoryAll, nil
	}
	if !c.IsSelectable() {
		return "", fmt.Errorf("unknown category: %s", s)
	}
	return c, nil
}
