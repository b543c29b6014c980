package crawl

import (
	"strings"
	"sync"

	"github.com/fwojciec/gtmagent"
	"github.com/fwojciec/gtmagent/bloom"
)

// Compile-time interface verification.
var _ gtmagent.URLFrontier = (*Frontier)(nil)

// Frontier is an in-memory FIFO crawl queue with Bloom filter deduplication.
// A URL is recorded as seen when it is first pushed, so a page that is
// queued or already visited is never queued again.
// It is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue []string
}

// NewFrontier creates a new Frontier sized for n expected URLs
// with the given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen: bloom.NewFilter(n, fpRate),
	}
}

// NewDefaultFrontier creates a Frontier sized for a single site crawl.
func NewDefaultFrontier() *Frontier {
	return &Frontier{
		seen: bloom.NewDefaultFilter(),
	}
}

// Push appends a URL to the back of the queue.
// Returns false if the URL has already been seen.
// URL fragments are stripped before deduplication - URLs differing only by
// fragment are considered duplicates.
func (f *Frontier) Push(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	url := stripFragment(rawURL)
	if f.seen.TestAndAdd(url) {
		return false
	}
	f.queue = append(f.queue, url)
	return true
}

// Pop removes and returns the oldest queued URL.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return "", false
	}
	url := f.queue[0]
	f.queue[0] = ""
	f.queue = f.queue[1:]
	return url, true
}

// Len returns the number of URLs in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen returns true if the URL has been processed or queued.
// URL fragments are stripped before checking.
func (f *Frontier) Seen(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Test(stripFragment(rawURL))
}

// Discovered returns the approximate number of distinct URLs ever pushed.
func (f *Frontier) Discovered() uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.EstimatedCount()
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}
