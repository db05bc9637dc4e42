package docscrape

import "strings"

// HeadingMarker starts a markdown heading line. Repeating it raises the level.
const HeadingMarker = '#'

// Heading represents a heading line in a markdown document.
type Heading struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

// ExtractHeadings returns every line of markdown that starts with a
// HeadingMarker, in order of appearance.
//
// Unlike a full markdown parser, it does not skip fenced code blocks and
// does not require a space after the markers. Repeated titles produce
// repeated anchors.
func ExtractHeadings(markdown string) []Heading {
	if markdown == "" {
		return nil
	}

	var headings []Heading
	for _, line := range strings.Split(markdown, "\n") {
		level := 0
		for level < len(line) && line[level] == HeadingMarker {
			level++
		}
		if level == 0 {
			continue
		}

		title := strings.TrimSpace(line[level:])
		headings = append(headings, Heading{
			Level:  level,
			Title:  title,
			Anchor: Anchor(title),
		})
	}
	return headings
}

// Anchor derives a link anchor from a heading title: lowercased, spaces
// replaced with hyphens, periods removed.
func Anchor(title string) string {
	anchor := strings.ToLower(title)
	anchor = strings.ReplaceAll(anchor, " ", "-")
	return strings.ReplaceAll(anchor, ".", "")
}

// GenerateTOC renders a nested markdown list linking every heading in
// markdown. Each entry is indented two spaces per level below 1.
func GenerateTOC(markdown string) string {
	headings := ExtractHeadings(markdown)
	if len(headings) == 0 {
		return ""
	}

	lines := make([]string, 0, len(headings))
	for _, h := range headings {
		lines = append(lines, strings.Repeat("  ", h.Level-1)+"- ["+h.Title+"](#"+h.Anchor+")")
	}
	return strings.Join(lines, "\n")
}
