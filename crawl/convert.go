package crawl

import (
	"context"
	"fmt"

	"github.com/fwojciec/docscrape"
)

// PageConverter fetches a page, locates its main content region, and
// converts that region to markdown.
type PageConverter struct {
	Fetcher   docscrape.Fetcher
	Content   docscrape.ContentFinder
	Converter docscrape.Converter
}

// Convert returns the markdown for url. Any failure is returned as an
// error and the caller is expected to skip the page.
func (c *PageConverter) Convert(ctx context.Context, url string) (string, error) {
	html, err := c.Fetcher.Fetch(ctx, url)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}

	region, err := c.Content.FindContent(html)
	if err != nil {
		return "", fmt.Errorf("find content in %s: %w", url, err)
	}

	markdown, err := c.Converter.Convert(region)
	if err != nil {
		return "", fmt.Errorf("convert %s: %w", url, err)
	}

	return markdown, nil
}
