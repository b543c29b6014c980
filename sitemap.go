package gtmagent

import "context"

// SitemapService discovers URLs from website sitemaps.
type SitemapService interface {
	// DiscoverURLs finds all URLs from a site's sitemap.
	// It first checks robots.txt for sitemap directives, then falls back
	// to /sitemap.xml. Sitemap indexes are resolved recursively.
	// Returns an empty slice when the site publishes no sitemap.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}
