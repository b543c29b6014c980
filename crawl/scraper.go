package crawl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/gtmagent"
)

// Compile-time interface verification.
var _ gtmagent.Scraper = (*Scraper)(nil)

// Scraper turns a single page into a Document. Pages on the brand
// allow-list additionally get a BrandExtract.
type Scraper struct {
	Fetcher   gtmagent.Fetcher
	Extractor gtmagent.Extractor
	// Brand is optional. When nil no brand extraction is attempted.
	Brand       gtmagent.BrandExtractor
	Logger      *slog.Logger
	RetryDelays []time.Duration
}

// Scrape fetches url and processes it. Any fetch failure yields a nil
// document and a nil error; only a canceled context is returned as an error.
func (s *Scraper) Scrape(ctx context.Context, url string) (*gtmagent.Document, error) {
	html, err := fetchWithRetry(ctx, s.Fetcher, url, s.RetryDelays, s.logger())
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		s.logger().Debug("scrape skipped",
			"url", url,
			"err", err,
		)
		return nil, nil
	}
	if strings.TrimSpace(html) == "" {
		s.logger().Debug("scrape skipped",
			"url", url,
			"err", "empty body",
		)
		return nil, nil
	}

	doc, err := s.Process(url, html)
	if err != nil {
		s.logger().Debug("scrape extraction failed",
			"url", url,
			"err", err,
		)
		return nil, nil
	}
	return doc, nil
}

// Process extracts a Document from already fetched HTML.
func (s *Scraper) Process(url, html string) (*gtmagent.Document, error) {
	readable, err := s.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}

	doc := &gtmagent.Document{
		URL:      url,
		Title:    readable.Title,
		Text:     readable.Text,
		Headings: readable.Headings,
		Source:   gtmagent.DefaultSource,
	}
	if s.Brand != nil && s.Brand.Matches(url) {
		doc.BrandExtract = s.Brand.ExtractBrand(html, readable)
	}
	return doc, nil
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}
