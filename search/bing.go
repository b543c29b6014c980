package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/fwojciec/gtmagent"
)

// BingBaseURL is the Bing Web Search v7 endpoint.
const BingBaseURL = "https://api.bing.microsoft.com/v7.0/search"

// BingMarket scopes Bing results to the UAE English market.
const BingMarket = "en-AE"

const bingTimeout = 20 * time.Second

var _ gtmagent.SearchProvider = (*Bing)(nil)

// Bing queries the Bing Web Search API.
type Bing struct {
	APIKey    string
	UserAgent string
	BaseURL   string
	Client    *http.Client
}

// NewBing creates a Bing provider with the production endpoint.
func NewBing(apiKey, userAgent string) *Bing {
	return &Bing{APIKey: apiKey, UserAgent: userAgent, BaseURL: BingBaseURL}
}

func (b *Bing) Name() string { return "bing" }

type bingResponse struct {
	WebPages struct {
		Value []struct {
			Name    string `json:"name"`
			URL     string `json:"url"`
			Snippet string `json:"snippet"`
		} `json:"value"`
	} `json:"webPages"`
}

func (b *Bing) Search(ctx context.Context, query string, maxResults int) ([]gtmagent.SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("count", strconv.Itoa(maxResults))
	params.Set("mkt", BingMarket)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.BaseURL+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", b.UserAgent)
	req.Header.Set("Ocp-Apim-Subscription-Key", b.APIKey)

	var data bingResponse
	if err := doJSON(clientOrDefault(b.Client, bingTimeout), req, &data); err != nil {
		return nil, fmt.Errorf("bing: %w", err)
	}

	results := make([]gtmagent.SearchResult, 0, len(data.WebPages.Value))
	for _, r := range data.WebPages.Value {
		results = append(results, gtmagent.SearchResult{
			Title:   r.Name,
			URL:     r.URL,
			Snippet: r.Snippet,
			Source:  b.Name(),
		})
	}
	return results, nil
}
