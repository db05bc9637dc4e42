package mock

import "github.com/fwojciec/docscrape"

var _ docscrape.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of docscrape.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, pageURL string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html string, pageURL string) ([]string, error) {
	return e.ExtractLinksFn(html, pageURL)
}
