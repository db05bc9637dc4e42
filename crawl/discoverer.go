package crawl

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/docscrape"
)

// Frontier configuration for discovery.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate of the pre-check.
	frontierFalsePositiveRate = 0.01
)

// Discoverer finds every in-scope page reachable from a base URL.
type Discoverer struct {
	Fetcher  docscrape.Fetcher
	Links    docscrape.LinkExtractor
	Progress ProgressFunc
}

// Discover walks the site starting at base and returns every visited URL,
// base included, in visit order.
//
// A link is followed when it starts with base, has not been visited, and
// passes docscrape.IsEligible. Pages that fail to fetch or parse are still
// counted as visited but contribute no links. Only an invalid base URL or a
// canceled context returns an error.
func (d *Discoverer) Discover(ctx context.Context, base string) ([]string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, docscrape.Errorf(docscrape.EINVALID, "invalid base URL %q: %v", base, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, docscrape.Errorf(docscrape.EINVALID, "base URL %q must be absolute", base)
	}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(base)

	completed := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pageURL, ok := frontier.Pop()
		if !ok {
			break
		}
		completed++

		d.report(ProgressEvent{Type: ProgressStarted, Completed: completed, Total: completed + frontier.Len(), URL: pageURL})

		links, err := d.links(ctx, pageURL)
		if err != nil {
			d.report(ProgressEvent{Type: ProgressFailed, Completed: completed, Total: completed + frontier.Len(), URL: pageURL, Error: err})
			continue
		}

		for _, link := range links {
			if !strings.HasPrefix(link, base) {
				continue
			}
			if frontier.Visited(link) {
				continue
			}
			if !docscrape.IsEligible(link, base) {
				continue
			}
			frontier.Push(link)
		}

		d.report(ProgressEvent{Type: ProgressCompleted, Completed: completed, Total: completed + frontier.Len(), URL: pageURL})
	}

	d.report(ProgressEvent{Type: ProgressFinished, Completed: completed, Total: completed})
	return frontier.VisitedURLs(), nil
}

// links fetches pageURL and returns its absolute hyperlink targets.
func (d *Discoverer) links(ctx context.Context, pageURL string) ([]string, error) {
	html, err := d.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	links, err := d.Links.ExtractLinks(html, pageURL)
	if err != nil {
		return nil, fmt.Errorf("extract links from %s: %w", pageURL, err)
	}
	return links, nil
}

func (d *Discoverer) report(event ProgressEvent) {
	if d.Progress != nil {
		d.Progress(event)
	}
}
