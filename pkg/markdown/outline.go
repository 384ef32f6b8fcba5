package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

// Heading is one outline entry derived from the raw Markdown text.
type Heading struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// ATX heading: 1-6 leading #, at least one space, then text.
var headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// ExtractOutline scans content line by line and returns its heading tree in
// document order. Bold-emphasis markers are stripped from the captured text.
// IDs are derived from the zero-based line index and match the ids the
// renderer assigns to heading elements, so outline navigation resolves by id
// even when two headings share the same text.
func ExtractOutline(content string) []Heading {
	lines := strings.Split(content, "\n")

	var headings []Heading
	for i, line := range lines {
		m := headingPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		text := strings.ReplaceAll(strings.TrimSpace(m[2]), "**", "")
		headings = append(headings, Heading{
			ID:    fmt.Sprintf("heading-%d", i),
			Text:  text,
			Level: len(m[1]),
		})
	}
	return headings
}
