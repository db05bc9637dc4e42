package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/docscrape"
	"github.com/fwojciec/docscrape/crawl"
	"github.com/fwojciec/docscrape/fs"
)

// Run executes the scrape command. Individual page failures are printed
// and skipped; only discovery setup and final aggregation errors abort,
// and those are returned unprinted for main to report.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	base := c.Config.BaseURL
	outputDir := c.Config.OutputDir()
	baseName := c.Config.BaseName()

	fmt.Fprintf(deps.Stdout, "Starting to process documentation from %s\n", base)

	deps.Discoverer.Progress = func(e crawl.ProgressEvent) {
		switch e.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Discovering links on %s\n", e.URL)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stdout, "Error discovering links on %s: %v\n", e.URL, e.Error)
		}
	}

	urls, err := deps.Discoverer.Discover(deps.Ctx, base)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Found %d pages to scrape.\n", len(urls))

	deps.Scraper.Progress = func(e crawl.ProgressEvent) {
		switch e.Type {
		case crawl.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "[%d/%d] Saved %s\n", e.Completed, e.Total, e.URL)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stdout, "[%d/%d] Skipped %s: %v\n", e.Completed, e.Total, e.URL, e.Error)
		}
	}

	result := deps.Scraper.ScrapeAll(deps.Ctx, urls)
	fmt.Fprintf(deps.Stdout, "Saved %d pages (%d skipped)\n", result.Saved, result.Failed)

	if _, err := deps.Aggregator.Aggregate(deps.Ctx, outputDir, outputDir, baseName); err != nil {
		return fmt.Errorf("combine pages: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "Combined markdown saved as %s\n", filepath.Join(outputDir, baseName+docscrape.MarkdownExt))
	fmt.Fprintf(deps.Stdout, "Combined text saved as %s\n", filepath.Join(outputDir, baseName+fs.TextExt))
	return nil
}
