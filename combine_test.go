package docscrape_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/docscrape"
	"github.com/stretchr/testify/assert"
)

func TestSectionHeader(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "index", docscrape.SectionHeader("index.md"))
	assert.Equal(t, "guide > install", docscrape.SectionHeader("guide/install.md"))
	assert.Equal(t, "a > b > c", docscrape.SectionHeader("a/b/c.md"))
}

func TestCombine(t *testing.T) {
	t.Parallel()

	t.Run("prefixes each file with a section header", func(t *testing.T) {
		t.Parallel()

		combined := docscrape.Combine([]docscrape.MarkdownFile{
			{Path: "a.md", Content: "## X"},
			{Path: "sub/b.md", Content: "### Y"},
		})

		wantBody := "# a\n\n## X\n\n" + "\n" + "# sub > b\n\n### Y\n\n"
		assert.Equal(t, wantBody, combined.Body)
	})

	t.Run("lists every heading in document order", func(t *testing.T) {
		t.Parallel()

		combined := docscrape.Combine([]docscrape.MarkdownFile{
			{Path: "a.md", Content: "## X"},
			{Path: "sub/b.md", Content: "### Y"},
		})

		wantTOC := "- [a](#a)\n  - [X](#x)\n- [sub > b](#sub->-b)\n    - [Y](#y)"
		assert.Equal(t, wantTOC, combined.TOC)
	})

	t.Run("toc entry count equals heading line count", func(t *testing.T) {
		t.Parallel()

		combined := docscrape.Combine([]docscrape.MarkdownFile{
			{Path: "one.md", Content: "# A\ntext\n## B\n## B"},
			{Path: "two.md", Content: "no headings"},
		})

		headingLines := 0
		for _, line := range strings.Split(combined.Body, "\n") {
			if strings.HasPrefix(line, "#") {
				headingLines++
			}
		}
		assert.Equal(t, headingLines, len(strings.Split(combined.TOC, "\n")))
	})

	t.Run("markdown output prefixes toc and text output does not", func(t *testing.T) {
		t.Parallel()

		combined := docscrape.Combine([]docscrape.MarkdownFile{
			{Path: "a.md", Content: "body"},
		})

		assert.Equal(t, "# Table of Contents\n\n- [a](#a)\n\n# a\n\nbody\n\n", combined.Markdown())
		assert.Equal(t, combined.Body, combined.Text())
	})

	t.Run("empty input yields empty document", func(t *testing.T) {
		t.Parallel()

		combined := docscrape.Combine(nil)

		assert.Equal(t, "", combined.Body)
		assert.Equal(t, "", combined.TOC)
		assert.Equal(t, "# Table of Contents\n\n\n\n", combined.Markdown())
	})
}
