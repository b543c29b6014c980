package mock

import (
	"context"

	"github.com/fwojciec/gtmagent"
)

var _ gtmagent.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of gtmagent.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

var _ gtmagent.RobotsGate = (*RobotsGate)(nil)

// RobotsGate is a mock implementation of gtmagent.RobotsGate.
type RobotsGate struct {
	IsAllowedFn func(ctx context.Context, url string) bool
}

func (g *RobotsGate) IsAllowed(ctx context.Context, url string) bool {
	return g.IsAllowedFn(ctx, url)
}

var _ gtmagent.Throttle = (*Throttle)(nil)

// Throttle is a mock implementation of gtmagent.Throttle.
type Throttle struct {
	WaitFn func(ctx context.Context) error
}

func (t *Throttle) Wait(ctx context.Context) error {
	return t.WaitFn(ctx)
}

var _ gtmagent.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of gtmagent.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL)
}
