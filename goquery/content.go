package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docscrape"
)

// Ensure ContentFinder implements docscrape.ContentFinder at compile time.
var _ docscrape.ContentFinder = (*ContentFinder)(nil)

// contentSelectors are tried in order; the first match wins.
var contentSelectors = []string{
	"article",
	`main, [role="main"]`,
}

// ContentFinder locates the main content region of a documentation page.
type ContentFinder struct{}

// NewContentFinder creates a new ContentFinder.
func NewContentFinder() *ContentFinder {
	return &ContentFinder{}
}

// FindContent returns the outer HTML of the first <article>, or failing
// that the first <main> (or role="main") element.
// Returns ENOTFOUND if neither is present.
func (f *ContentFinder) FindContent(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", docscrape.Errorf(docscrape.EINVALID, "failed to parse HTML: %v", err)
	}

	for _, selector := range contentSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		return goquery.OuterHtml(sel)
	}

	return "", docscrape.Errorf(docscrape.ENOTFOUND, "no main content found")
}
