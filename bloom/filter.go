// Package bloom provides crawl URL deduplication using Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Default sizing for a single crawl. A site crawl is bounded by MaxPages but
// the frontier also records every discovered link.
const (
	DefaultExpectedURLs      = 100_000
	DefaultFalsePositiveRate = 0.0001
)

// Filter wraps a Bloom filter keyed by normalized URL.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// NewDefaultFilter creates a filter sized for a single crawl.
func NewDefaultFilter() *Filter {
	return NewFilter(DefaultExpectedURLs, DefaultFalsePositiveRate)
}

// Add adds a URL to the filter.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Test returns true if the URL might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}

// TestAndAdd adds the URL and reports whether it was possibly present before.
func (f *Filter) TestAndAdd(url string) bool {
	return f.f.TestAndAddString(url)
}

// EstimatedCount returns the approximate number of items in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
