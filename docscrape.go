// Package docscrape crawls a documentation site, converts every page it
// finds to markdown, and merges the pages into one combined document with a
// generated table of contents.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, htmltomarkdown/, http/).
package docscrape

import (
	"context"
	"time"
)

// Page represents a scraped documentation page.
type Page struct {
	URL       string
	Content   string // Markdown
	ScrapedAt time.Time
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	return nil
}

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs a single GET request and returns the response body.
	// The context controls cancellation; implementations apply their own timeout.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// ContentFinder locates the main content region of an HTML page.
type ContentFinder interface {
	// FindContent returns the outer HTML of the designated content region.
	// Returns ENOTFOUND if the page has no such region.
	FindContent(html string) (string, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// Hyperlinks are preserved.
	Convert(html string) (string, error)
}

// LinkExtractor extracts hyperlink targets from HTML.
type LinkExtractor interface {
	// ExtractLinks returns every hyperlink target in html resolved to an
	// absolute URL against pageURL, in document order.
	ExtractLinks(html string, pageURL string) ([]string, error)
}

// PageWriter persists a single scraped page.
type PageWriter interface {
	SavePage(ctx context.Context, page *Page) error
}

// FileWriter writes a file, creating parent directories as needed.
type FileWriter interface {
	WriteFile(path string, content []byte) error
}
