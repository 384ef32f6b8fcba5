package markdown

import (
	"regexp"

	"gopkg.in/yaml.v3"
)

// A single YAML front matter block at the very start of the document:
// a --- line, arbitrary content, a closing --- line.
var frontMatterPattern = regexp.MustCompile(`(?s)\A---[ \t]*\n(.*?)\n---[ \t]*\n`)

// StripFrontMatter removes one leading YAML front matter block from content
// and returns the remaining text together with the parsed metadata. Content
// without a front matter block is returned unchanged with nil metadata, as is
// content whose block fails to parse as YAML (stripping never fails).
func StripFrontMatter(content string) (string, map[string]any) {
	m := frontMatterPattern.FindStringSubmatch(content)
	if m == nil {
		return content, nil
	}

	body := content[len(m[0]):]

	var meta map[string]any
	if err := yaml.Unmarshal([]byte(m[1]), &meta); err != nil {
		return body, nil
	}
	return body, meta
}
