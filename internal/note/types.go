package note

import "funbook/pkg/markdown"

// Note is a fetched and rendered book note.
type Note struct {
	HTML    string             // Rendered Markdown, front matter excluded
	Outline []markdown.Heading // Heading tree for in-page navigation
	Meta    map[string]any     // Parsed front matter, nil when absent
}
