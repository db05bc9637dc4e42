package crawl

import "github.com/fwojciec/docscrape/bloom"

// Frontier tracks URLs waiting to be fetched and URLs already visited.
// Every URL is pushed at most once, so it is queued, then visited, and
// never queued again. It is not safe for concurrent use.
type Frontier struct {
	seen   *bloom.Set // queued or visited
	queued map[string]struct{}
	queue  []string
	order  []string
}

// NewFrontier creates a new Frontier whose seen set is sized for n
// expected URLs with the given false positive rate.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen:   bloom.NewSet(n, fpRate),
		queued: make(map[string]struct{}),
	}
}

// Push adds url to the queue.
// Returns false if url is already queued or visited.
func (f *Frontier) Push(url string) bool {
	if !f.seen.Add(url) {
		return false
	}
	f.queued[url] = struct{}{}
	f.queue = append(f.queue, url)
	return true
}

// Pop removes the next URL from the queue and marks it visited.
// The bool result is false if the queue is empty.
func (f *Frontier) Pop() (string, bool) {
	if len(f.queue) == 0 {
		return "", false
	}
	url := f.queue[0]
	f.queue = f.queue[1:]
	delete(f.queued, url)

	f.order = append(f.order, url)
	return url, true
}

// Visited reports whether url has been popped.
func (f *Frontier) Visited(url string) bool {
	if !f.seen.Contains(url) {
		return false
	}
	_, queued := f.queued[url]
	return !queued
}

// Len returns the number of queued URLs.
func (f *Frontier) Len() int {
	return len(f.queue)
}

// VisitedURLs returns visited URLs in the order they were popped.
func (f *Frontier) VisitedURLs() []string {
	urls := make([]string, len(f.order))
	copy(urls, f.order)
	return urls
}
