package gtmagent

import "context"

// Scraper fetches a single page and turns it into a Document.
type Scraper interface {
	// Scrape returns nil without error when the page could not be retrieved.
	// Only context cancellation is reported as an error.
	Scrape(ctx context.Context, url string) (*Document, error)
}

// CrawlOptions bounds a crawl.
type CrawlOptions struct {
	// MaxPages caps the number of documents returned.
	MaxPages int

	// SameDomainOnly restricts the crawl to the seed URL's host.
	SameDomainOnly bool

	// UseSitemap additionally seeds the frontier from the site's sitemaps.
	UseSitemap bool
}

// CrawlProgress reports progress as a crawl proceeds.
type CrawlProgress struct {
	URL       string
	Completed int
	Queued    int
	Error     error
}

// CrawlProgressFunc is called after each page is processed.
type CrawlProgressFunc func(CrawlProgress)

// Crawler walks a site breadth-first from a seed URL.
type Crawler interface {
	// Crawl returns at most opts.MaxPages documents. Pages that cannot be
	// fetched are skipped, so fewer documents than requested is normal.
	Crawl(ctx context.Context, seedURL string, opts CrawlOptions, progress CrawlProgressFunc) ([]*Document, error)
}
