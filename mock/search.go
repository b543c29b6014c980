package mock

import (
	"context"

	"github.com/fwojciec/gtmagent"
)

var _ gtmagent.SearchProvider = (*SearchProvider)(nil)

// SearchProvider is a mock implementation of gtmagent.SearchProvider.
type SearchProvider struct {
	NameFn   func() string
	SearchFn func(ctx context.Context, query string, maxResults int) ([]gtmagent.SearchResult, error)
}

func (p *SearchProvider) Name() string {
	return p.NameFn()
}

func (p *SearchProvider) Search(ctx context.Context, query string, maxResults int) ([]gtmagent.SearchResult, error) {
	return p.SearchFn(ctx, query, maxResults)
}

var _ gtmagent.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of gtmagent.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string, maxResults int) ([]gtmagent.SearchResult, error)
}

func (s *Searcher) Search(ctx context.Context, query string, maxResults int) ([]gtmagent.SearchResult, error) {
	return s.SearchFn(ctx, query, maxResults)
}
