package event

import "strings"

// classificationRules is checked in order and the first matching rule wins.
// A title with both "concert" and "festival" is music. Callers depend on this
// bias, so confirm with stakeholders before reordering.
var classificationRules = []struct {
	category Category
	keywords []string
}{
	{CategoryMusic, []string{"concert", "music", "dj"}},
	{CategoryConference, []string{"conference", "summit", "workshop"}},
	{CategoryFestival, []string{"festival", "cultural"}},
	{CategorySports, []string{"sports", "game", "match"}},
	{CategoryArts, []string{"art", "theater", "exhibition"}},
	{CategoryFood, []string{"food", "drink"}},
	{CategoryFamily, []string{"family", "kids"}},
}

// eventKeywords mark a search hit as describing an event
var eventKeywords = []string{"event", "concert", "festival", "conference", "show", "exhibition", "tickets", "register"}

// Classify assigns a category to an event title by keyword matching.
// Matching is a case-insensitive substring test, so "dj" also matches
// inside longer words. Returns CategoryOther when nothing matches.
func Classify(text string) Category {
	t := strings.ToLower(text)
	for _, rule := range classificationRules {
		if containsAny(t, rule.keywords) {
			return rule.category
		}
	}
	return CategoryOther
}

// IsEventLike reports whether a search hit looks like an event listing
func IsEventLike(title, snippet string) bool {
	return containsAny(strings.ToLower(title+snippet), eventKeywords)
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
