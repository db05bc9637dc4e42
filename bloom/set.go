// Package bloom provides an exact URL set with a Bloom filter in front of
// it. Most lookups during a crawl are for URLs never seen before, and the
// filter answers those without touching the map.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Set is a set of URL strings. Membership is exact: a filter hit is always
// confirmed against the map, so false positives never hide a new URL.
// It is not safe for concurrent use.
type Set struct {
	filter *bloom.BloomFilter
	exact  map[string]struct{}
}

// NewSet creates an empty Set whose filter is sized for n expected URLs
// with the given false positive rate.
func NewSet(n uint, fpRate float64) *Set {
	return &Set{
		filter: bloom.NewWithEstimates(n, fpRate),
		exact:  make(map[string]struct{}),
	}
}

// Add inserts url. Returns false if url was already present.
func (s *Set) Add(url string) bool {
	if s.Contains(url) {
		return false
	}
	s.filter.AddString(url)
	s.exact[url] = struct{}{}
	return true
}

// Contains reports whether url has been added.
func (s *Set) Contains(url string) bool {
	if !s.filter.TestString(url) {
		return false
	}
	_, ok := s.exact[url]
	return ok
}
