package mock

import "github.com/fwojciec/docscrape"

var _ docscrape.Converter = (*Converter)(nil)

// Converter is a mock implementation of docscrape.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ docscrape.ContentFinder = (*ContentFinder)(nil)

// ContentFinder is a mock implementation of docscrape.ContentFinder.
type ContentFinder struct {
	FindContentFn func(html string) (string, error)
}

func (f *ContentFinder) FindContent(html string) (string, error) {
	return f.FindContentFn(html)
}
