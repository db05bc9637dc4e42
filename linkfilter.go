package docscrape

import (
	"net/url"
	"strings"
)

// DisallowedSubstrings mark version-archive and historical pages.
// Matching is case-insensitive against the full URL.
var DisallowedSubstrings = []string{"/version", "/0.", "/beta", "history"}

// IsEligible reports whether candidate may be crawled from base.
// Candidates with a fragment, on a different host, or matching any of
// DisallowedSubstrings are rejected. Unparsable URLs are never eligible.
func IsEligible(candidate, base string) bool {
	c, err := url.Parse(candidate)
	if err != nil {
		return false
	}
	b, err := url.Parse(base)
	if err != nil {
		return false
	}

	// A bare trailing "#" parses to an empty fragment but still names an anchor.
	if c.Fragment != "" || strings.Contains(candidate, "#") {
		return false
	}
	if c.Host != b.Host {
		return false
	}

	lower := strings.ToLower(candidate)
	for _, s := range DisallowedSubstrings {
		if strings.Contains(lower, s) {
			return false
		}
	}
	return true
}
