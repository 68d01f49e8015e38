package calendar

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// markupPattern matches the closing tags and line breaks providers leave in
// snippets. A lone "<canvas>" or "a < b" is not markup.
var markupPattern = regexp.MustCompile(`(?i)</[a-z][a-z0-9]*\s*>|<br\s*/?>`)

// plainText renders an HTML snippet as plain text lines for DESCRIPTION.
// Text without markup is returned unchanged.
func plainText(s string) string {
	if !markupPattern.MatchString(s) {
		return s
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}

	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("p, div, li").Each(func(_ int, sel *goquery.Selection) {
		sel.AppendHtml("\n")
	})

	var lines []string
	for _, line := range strings.Split(doc.Text(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
