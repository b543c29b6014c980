package gtmagent

import "context"

// SearchResult is a single web search result. It is not persisted.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
	Source  string `json:"source"`
}

// SearchProvider adapts one external search API to SearchResult.
type SearchProvider interface {
	// Name returns the provider identifier used as SearchResult.Source.
	Name() string

	// Search asks the provider for up to maxResults results.
	Search(ctx context.Context, query string, maxResults int) ([]SearchResult, error)
}

// Searcher runs a web search across every configured provider.
type Searcher interface {
	// Search returns results deduplicated by URL, in provider order,
	// truncated to maxResults.
	Search(ctx context.Context, query string, maxResults int) ([]SearchResult, error)
}

// DedupeResults drops results without a URL and keeps only the first
// occurrence of each URL, preserving order.
func DedupeResults(results []SearchResult) []SearchResult {
	seen := make(map[string]bool, len(results))
	deduped := make([]SearchResult, 0, len(results))
	for _, r := range results {
		if r.URL == "" || seen[r.URL] {
			continue
		}
		seen[r.URL] = true
		deduped = append(deduped, r)
	}
	return deduped
}
