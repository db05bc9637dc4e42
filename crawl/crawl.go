// Package crawl provides documentation crawling orchestration.
// It discovers in-scope pages from a base URL, converts each page to
// markdown, and hands the results to a docscrape.PageWriter.
package crawl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/docscrape"
)

// ProgressEvent reports progress during discovery or scraping.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Result holds the outcome of a scrape operation.
type Result struct {
	Saved  int
	Failed int
	Bytes  int
}

// Scraper converts discovered URLs to pages and saves them one at a time.
// A failure on one URL is reported and skipped; it never stops the run.
// Pages that convert to blank markdown are skipped as ENOTFOUND.
type Scraper struct {
	Converter *PageConverter
	Pages     docscrape.PageWriter
	Progress  ProgressFunc

	// Now returns the scrape timestamp. Defaults to time.Now.
	Now func() time.Time
}

// ScrapeAll converts and saves every URL in order.
func (s *Scraper) ScrapeAll(ctx context.Context, urls []string) *Result {
	var result Result
	total := len(urls)

	s.report(ProgressEvent{Type: ProgressStarted, Total: total})

	for i, u := range urls {
		if err := s.scrape(ctx, u, &result); err != nil {
			result.Failed++
			s.report(ProgressEvent{Type: ProgressFailed, Completed: i + 1, Total: total, URL: u, Error: err})
			continue
		}
		result.Saved++
		s.report(ProgressEvent{Type: ProgressCompleted, Completed: i + 1, Total: total, URL: u})
	}

	s.report(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	return &result
}

func (s *Scraper) scrape(ctx context.Context, u string, result *Result) error {
	markdown, err := s.Converter.Convert(ctx, u)
	if err != nil {
		return err
	}
	if strings.TrimSpace(markdown) == "" {
		return docscrape.Errorf(docscrape.ENOTFOUND, "no content in %s", u)
	}

	page := &docscrape.Page{
		URL:       u,
		Content:   markdown,
		ScrapedAt: s.now(),
	}
	if err := s.Pages.SavePage(ctx, page); err != nil {
		return fmt.Errorf("save page: %w", err)
	}

	result.Bytes += len(markdown)
	return nil
}

func (s *Scraper) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Scraper) report(event ProgressEvent) {
	if s.Progress != nil {
		s.Progress(event)
	}
}
