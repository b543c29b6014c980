// Package crawl provides the scrape pipeline and breadth-first site crawling.
// It coordinates fetching, extraction, link discovery and frontier
// management for a single site.
package crawl

import (
	"context"
	"log/slog"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/fwojciec/gtmagent"
	"github.com/fwojciec/gtmagent/goquery"
)

// DefaultMaxPages is used when CrawlOptions.MaxPages is not positive.
const DefaultMaxPages = 10

// skippedExtensions are file types never queued for crawling.
var skippedExtensions = []string{".pdf", ".jpg", ".png", ".zip", ".gif", ".svg", ".mp4", ".mov"}

// Ensure Crawler implements gtmagent.Crawler at compile time.
var _ gtmagent.Crawler = (*Crawler)(nil)

// Crawler walks a site breadth-first from a seed URL.
type Crawler struct {
	Fetcher gtmagent.Fetcher
	Scraper *Scraper
	// Sitemaps is optional. It is consulted only when CrawlOptions.UseSitemap is set.
	Sitemaps    gtmagent.SitemapService
	Logger      *slog.Logger
	RetryDelays []time.Duration
}

// Crawl visits pages reachable from seedURL in FIFO order and returns the
// scraped documents, at most opts.MaxPages of them. Pages that cannot be
// fetched are skipped. On cancellation the documents collected so far are
// returned together with the context error.
func (c *Crawler) Crawl(ctx context.Context, seedURL string, opts gtmagent.CrawlOptions, progress gtmagent.CrawlProgressFunc) ([]*gtmagent.Document, error) {
	seed, err := url.Parse(seedURL)
	if err != nil || !isHTTP(seed) || seed.Host == "" {
		return nil, gtmagent.Errorf(gtmagent.EINVALID, "invalid seed URL: %q", seedURL)
	}

	maxPages := opts.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	logger := c.logger()
	frontier := NewDefaultFrontier()
	frontier.Push(seedURL)

	if opts.UseSitemap && c.Sitemaps != nil {
		urls, err := c.Sitemaps.DiscoverURLs(ctx, seedURL)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			logger.Debug("sitemap discovery failed",
				"url", seedURL,
				"err", err,
			)
		}
		for _, u := range urls {
			if shouldQueue(u, seed.Host, opts.SameDomainOnly) {
				frontier.Push(u)
			}
		}
	}

	var docs []*gtmagent.Document
	for len(docs) < maxPages {
		if err := ctx.Err(); err != nil {
			return docs, err
		}

		pageURL, ok := frontier.Pop()
		if !ok {
			break
		}

		html, err := fetchWithRetry(ctx, c.Fetcher, pageURL, c.RetryDelays, logger)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return docs, ctxErr
			}
			logger.Debug("crawl fetch skipped",
				"url", pageURL,
				"err", err,
			)
			c.report(progress, gtmagent.CrawlProgress{
				URL:       pageURL,
				Completed: len(docs),
				Queued:    frontier.Len(),
				Error:     err,
			})
			continue
		}

		doc, processErr := c.Scraper.Process(pageURL, html)
		if processErr != nil {
			logger.Debug("crawl extraction failed",
				"url", pageURL,
				"err", processErr,
			)
		} else {
			docs = append(docs, doc)
		}

		if links, err := goquery.ExtractLinks(html, pageURL); err == nil {
			for _, link := range links {
				if !frontier.Seen(link) && shouldQueue(link, seed.Host, opts.SameDomainOnly) {
					frontier.Push(link)
				}
			}
		}

		c.report(progress, gtmagent.CrawlProgress{
			URL:       pageURL,
			Completed: len(docs),
			Queued:    frontier.Len(),
			Error:     processErr,
		})
	}

	logger.Debug("crawl finished",
		"url", seedURL,
		"pages", len(docs),
		"discovered", frontier.Discovered(),
	)
	return docs, nil
}

func (c *Crawler) report(progress gtmagent.CrawlProgressFunc, p gtmagent.CrawlProgress) {
	if progress != nil {
		progress(p)
	}
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

// shouldQueue applies the crawl link filters: http(s) only, optionally the
// seed host only, and no binary or media file extensions.
func shouldQueue(rawURL, seedHost string, sameDomainOnly bool) bool {
	u, err := url.Parse(rawURL)
	if err != nil || !isHTTP(u) {
		return false
	}
	if sameDomainOnly && u.Host != seedHost {
		return false
	}
	path := strings.ToLower(u.Path)
	return !slices.ContainsFunc(skippedExtensions, func(ext string) bool {
		return strings.HasSuffix(path, ext)
	})
}

func isHTTP(u *url.URL) bool {
	return u.Scheme == "http" || u.Scheme == "https"
}
