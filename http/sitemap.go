package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/gtmagent"
)

// maxSitemapURLs stops sitemap discovery once this many page URLs are known.
const maxSitemapURLs = 5000

// Ensure SitemapService implements gtmagent.SitemapService.
var _ gtmagent.SitemapService = (*SitemapService)(nil)

// SitemapService discovers page URLs from a site's sitemaps. Every request
// goes through the shared throttle, and sitemaps disallowed by robots.txt
// are skipped.
type SitemapService struct {
	client    *http.Client
	throttle  gtmagent.Throttle
	robots    *RobotsGate
	userAgent string
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, a client with DefaultFetchTimeout is used. The throttle
// may be nil. Passing the fetcher's RobotsGate shares its robots.txt cache;
// if robots is nil a private gate is created.
func NewSitemapService(client *http.Client, throttle gtmagent.Throttle, robots *RobotsGate) *SitemapService {
	if client == nil {
		client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	if robots == nil {
		robots = NewRobotsGate(client, throttle, gtmagent.DefaultUserAgent)
	}
	return &SitemapService{
		client:    client,
		throttle:  throttle,
		robots:    robots,
		userAgent: gtmagent.DefaultUserAgent,
	}
}

// DiscoverURLs finds all page URLs from the sitemaps of baseURL's host.
// Returns an empty slice (not nil) if no sitemaps are found.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, gtmagent.Errorf(gtmagent.EINVALID, "invalid base URL: %v", err)
	}
	root := &url.URL{Scheme: base.Scheme, Host: base.Host}

	sitemapURLs, err := s.findSitemapURLs(ctx, root)
	if err != nil {
		return nil, err
	}

	urls := []string{}
	seenSitemaps := make(map[string]bool)
	seenURLs := make(map[string]bool)

	for _, sitemapURL := range sitemapURLs {
		found, err := s.processSitemap(ctx, sitemapURL, seenSitemaps)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			// A broken sitemap must not hide the others.
			continue
		}
		for _, u := range found {
			if seenURLs[u] {
				continue
			}
			seenURLs[u] = true
			urls = append(urls, u)
			if len(urls) >= maxSitemapURLs {
				return urls, nil
			}
		}
	}

	return urls, nil
}

// findSitemapURLs takes Sitemap: directives from the robots gate and falls
// back to /sitemap.xml.
func (s *SitemapService) findSitemapURLs(ctx context.Context, root *url.URL) ([]string, error) {
	sitemaps := s.robots.Sitemaps(ctx, root.String())
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(sitemaps) > 0 {
		return sitemaps, nil
	}
	return []string{root.ResolveReference(&url.URL{Path: "/sitemap.xml"}).String()}, nil
}

// processSitemap fetches and parses a sitemap, handling both urlset and sitemapindex.
func (s *SitemapService) processSitemap(ctx context.Context, sitemapURL string, seen map[string]bool) ([]string, error) {
	if seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	if !s.robots.IsAllowed(ctx, sitemapURL) {
		return nil, gtmagent.Errorf(gtmagent.EDISALLOWED, "robots.txt disallows %s", sitemapURL)
	}

	body, err := s.get(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, fmt.Errorf("parsing sitemap XML: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("empty sitemap XML")
	}

	if root.Tag == "sitemapindex" {
		var urls []string
		for _, child := range locs(root, "sitemap") {
			found, err := s.processSitemap(ctx, child, seen)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				continue
			}
			urls = append(urls, found...)
		}
		return urls, nil
	}

	return locs(root, "url"), nil
}

// locs returns the trimmed <loc> text of every child element named tag.
func locs(root *etree.Element, tag string) []string {
	var out []string
	for _, el := range root.SelectElements(tag) {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		if u := strings.TrimSpace(loc.Text()); u != "" {
			out = append(out, u)
		}
	}
	return out
}

// get throttles and fetches a URL, returning the body for 200 responses.
func (s *SitemapService) get(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	if s.throttle != nil {
		if err := s.throttle.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, gtmagent.Errorf(gtmagent.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, targetURL)
	}
	return resp.Body, nil
}
