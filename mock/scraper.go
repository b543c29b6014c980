package mock

import (
	"context"

	"github.com/fwojciec/gtmagent"
)

var _ gtmagent.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of gtmagent.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, url string) (*gtmagent.Document, error)
}

func (s *Scraper) Scrape(ctx context.Context, url string) (*gtmagent.Document, error) {
	return s.ScrapeFn(ctx, url)
}

var _ gtmagent.Generator = (*Generator)(nil)

// Generator is a mock implementation of gtmagent.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, req gtmagent.GenerateRequest) (string, error)
}

func (g *Generator) Generate(ctx context.Context, req gtmagent.GenerateRequest) (string, error) {
	return g.GenerateFn(ctx, req)
}

var _ gtmagent.ArtifactWriter = (*ArtifactWriter)(nil)

// ArtifactWriter is a mock implementation of gtmagent.ArtifactWriter.
type ArtifactWriter struct {
	WriteFn func(kind string, content string) (string, error)
}

func (w *ArtifactWriter) Write(kind string, content string) (string, error) {
	return w.WriteFn(kind, content)
}

var _ gtmagent.Crawler = (*Crawler)(nil)

// Crawler is a mock implementation of gtmagent.Crawler.
type Crawler struct {
	CrawlFn func(ctx context.Context, seedURL string, opts gtmagent.CrawlOptions, progress gtmagent.CrawlProgressFunc) ([]*gtmagent.Document, error)
}

func (c *Crawler) Crawl(ctx context.Context, seedURL string, opts gtmagent.CrawlOptions, progress gtmagent.CrawlProgressFunc) ([]*gtmagent.Document, error) {
	return c.CrawlFn(ctx, seedURL, opts, progress)
}

var _ gtmagent.Researcher = (*Researcher)(nil)

// Researcher is a mock implementation of gtmagent.Researcher.
type Researcher struct {
	ResearchFn func(ctx context.Context, query string, maxPages int) (*gtmagent.Report, error)
	GenerateFn func(ctx context.Context, kind string, fields map[string]string) (string, error)
}

func (r *Researcher) Research(ctx context.Context, query string, maxPages int) (*gtmagent.Report, error) {
	return r.ResearchFn(ctx, query, maxPages)
}

func (r *Researcher) Generate(ctx context.Context, kind string, fields map[string]string) (string, error) {
	return r.GenerateFn(ctx, kind, fields)
}
