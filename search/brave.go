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

// BraveBaseURL is the Brave web search endpoint.
const BraveBaseURL = "https://api.search.brave.com/res/v1/web/search"

const braveTimeout = 20 * time.Second

var _ gtmagent.SearchProvider = (*Brave)(nil)

// Brave queries the Brave Search API.
type Brave struct {
	APIKey    string
	UserAgent string
	BaseURL   string
	Client    *http.Client
}

// NewBrave creates a Brave provider with the production endpoint.
func NewBrave(apiKey, userAgent string) *Brave {
	return &Brave{APIKey: apiKey, UserAgent: userAgent, BaseURL: BraveBaseURL}
}

func (b *Brave) Name() string { return "brave" }

type braveResponse struct {
	Web struct {
		Results []struct {
			Title       string `json:"title"`
			URL         string `json:"url"`
			Description string `json:"description"`
		} `json:"results"`
	} `json:"web"`
}

func (b *Brave) Search(ctx context.Context, query string, maxResults int) ([]gtmagent.SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("count", strconv.Itoa(maxResults))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.BaseURL+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", b.UserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", b.APIKey)

	var data braveResponse
	if err := doJSON(clientOrDefault(b.Client, braveTimeout), req, &data); err != nil {
		return nil, fmt.Errorf("brave: %w", err)
	}

	results := make([]gtmagent.SearchResult, 0, len(data.Web.Results))
	for _, r := range data.Web.Results {
		results = append(results, gtmagent.SearchResult{
			Title:   r.Title,
			URL:     r.URL,
			Snippet: r.Description,
			Source:  b.Name(),
		})
	}
	return results, nil
}
