// Package search implements web search across several providers and merges
// their results into one deduplicated list.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/gtmagent"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxResults is used when a caller asks for zero or fewer results.
const DefaultMaxResults = 10

// maxErrorBodyBytes limits how much of a failed response is kept for the error.
const maxErrorBodyBytes = 512

// Ensure Aggregator implements gtmagent.Searcher at compile time.
var _ gtmagent.Searcher = (*Aggregator)(nil)

// Aggregator queries every provider and merges the results in provider order.
// A failing provider contributes no results and never fails the search.
type Aggregator struct {
	Providers []gtmagent.SearchProvider
	Logger    *slog.Logger
}

// Config holds the credentials of the optional providers. A provider whose
// key is empty is not registered. DuckDuckGo needs no key and is always used.
type Config struct {
	BraveKey   string
	BingKey    string
	SerpAPIKey string
	TavilyKey  string
	UserAgent  string
}

// NewAggregatorFromConfig registers DuckDuckGo followed by every keyed
// provider in the order Brave, Bing, SerpAPI, Tavily.
func NewAggregatorFromConfig(cfg Config, logger *slog.Logger) *Aggregator {
	ua := cfg.UserAgent
	if ua == "" {
		ua = gtmagent.DefaultUserAgent
	}

	providers := []gtmagent.SearchProvider{NewDuckDuckGo(ua)}
	if cfg.BraveKey != "" {
		providers = append(providers, NewBrave(cfg.BraveKey, ua))
	}
	if cfg.BingKey != "" {
		providers = append(providers, NewBing(cfg.BingKey, ua))
	}
	if cfg.SerpAPIKey != "" {
		providers = append(providers, NewSerpAPI(cfg.SerpAPIKey, ua))
	}
	if cfg.TavilyKey != "" {
		providers = append(providers, NewTavily(cfg.TavilyKey, ua))
	}

	return &Aggregator{Providers: providers, Logger: logger}
}

// Search asks every provider for up to maxResults results concurrently, then
// merges them in registration order, keeping the first result for each URL,
// and truncates to maxResults.
func (a *Aggregator) Search(ctx context.Context, query string, maxResults int) ([]gtmagent.SearchResult, error) {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	logger := a.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	perProvider := make([][]gtmagent.SearchResult, len(a.Providers))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range a.Providers {
		g.Go(func() error {
			start := time.Now()
			results, err := p.Search(gctx, query, maxResults)
			if err != nil {
				logger.Warn("search provider failed",
					"provider", p.Name(),
					"query", query,
					"duration", time.Since(start),
					"err", err,
				)
				return nil
			}
			logger.Debug("search provider answered",
				"provider", p.Name(),
				"query", query,
				"count", len(results),
				"duration", time.Since(start),
			)
			perProvider[i] = results
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var merged []gtmagent.SearchResult
	for _, results := range perProvider {
		merged = append(merged, results...)
	}
	merged = gtmagent.DedupeResults(merged)
	if len(merged) > maxResults {
		merged = merged[:maxResults]
	}
	return merged, nil
}

// doJSON sends req and decodes a 2xx JSON response into out.
func doJSON(client *http.Client, req *http.Request, out any) error {
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func clientOrDefault(c *http.Client, timeout time.Duration) *http.Client {
	if c != nil {
		return c
	}
	return &http.Client{Timeout: timeout}
}
