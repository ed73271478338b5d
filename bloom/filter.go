// Package bloom provides an approximate seen-set for crawl frontiers.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// URLSet tracks which URLs a crawl has already enqueued. Seen may report
// true for a URL that was never added; it never reports false for one
// that was. A false positive costs one skipped page, a miss would loop.
type URLSet struct {
	filter *bloom.BloomFilter
}

// NewURLSet creates a set sized for n expected URLs with the given
// false positive rate. The page budget caps what a crawl fetches, but
// the seen-set holds every URL discovered along the way, so n should be
// well above the budget.
func NewURLSet(n uint, fpRate float64) *URLSet {
	return &URLSet{filter: bloom.NewWithEstimates(n, fpRate)}
}

// Add marks a URL as seen.
func (s *URLSet) Add(url string) {
	s.filter.AddString(url)
}

// Seen reports whether the URL has been added.
func (s *URLSet) Seen(url string) bool {
	return s.filter.TestString(url)
}

// MarkSeen marks the URL as seen and reports whether it already was,
// in a single pass over the filter.
func (s *URLSet) MarkSeen(url string) bool {
	return s.filter.TestAndAddString(url)
}

// ApproxCount estimates the number of distinct URLs added.
func (s *URLSet) ApproxCount() uint {
	return uint(s.filter.ApproximatedSize())
}
