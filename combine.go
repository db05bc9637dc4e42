package docscrape

import "strings"

// MarkdownExt is the extension of files considered for aggregation.
const MarkdownExt = ".md"

// tocTitle heads the generated table of contents.
const tocTitle = "# Table of Contents\n\n"

// MarkdownFile is a saved page as read back for aggregation.
type MarkdownFile struct {
	Path    string // slash-separated, relative to the aggregation root
	Content string
}

// Combined is the merged document produced from a set of markdown files.
type Combined struct {
	Body string
	TOC  string
}

// Markdown returns the combined document prefixed with its table of contents.
func (c *Combined) Markdown() string {
	return tocTitle + c.TOC + "\n\n" + c.Body
}

// Text returns the combined body without a table of contents.
func (c *Combined) Text() string {
	return c.Body
}

// SectionHeader derives a section title from a relative file path.
// Example: guide/install.md → guide > install
func SectionHeader(relPath string) string {
	name := strings.TrimSuffix(relPath, MarkdownExt)
	return strings.ReplaceAll(name, "/", " > ")
}

// Combine concatenates files in the given order. Each file becomes a block
// headed by its SectionHeader, and blocks are separated by a single newline.
// The table of contents covers every heading in the resulting body,
// including the section headers themselves.
func Combine(files []MarkdownFile) *Combined {
	blocks := make([]string, 0, len(files))
	for _, f := range files {
		blocks = append(blocks, "# "+SectionHeader(f.Path)+"\n\n"+f.Content+"\n\n")
	}

	body := strings.Join(blocks, "\n")
	return &Combined{
		Body: body,
		TOC:  GenerateTOC(body),
	}
}
