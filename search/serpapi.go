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

// SerpAPIBaseURL is the SerpAPI JSON endpoint.
const SerpAPIBaseURL = "https://serpapi.com/search.json"

// SerpAPILocation scopes Google results to the UAE.
const SerpAPILocation = "United Arab Emirates"

const serpAPITimeout = 30 * time.Second

var _ gtmagent.SearchProvider = (*SerpAPI)(nil)

// SerpAPI queries Google through SerpAPI.
type SerpAPI struct {
	APIKey    string
	UserAgent string
	BaseURL   string
	Client    *http.Client
}

// NewSerpAPI creates a SerpAPI provider with the production endpoint.
func NewSerpAPI(apiKey, userAgent string) *SerpAPI {
	return &SerpAPI{APIKey: apiKey, UserAgent: userAgent, BaseURL: SerpAPIBaseURL}
}

func (s *SerpAPI) Name() string { return "serpapi" }

type serpAPIResponse struct {
	OrganicResults []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"organic_results"`
}

func (s *SerpAPI) Search(ctx context.Context, query string, maxResults int) ([]gtmagent.SearchResult, error) {
	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", query)
	params.Set("num", strconv.Itoa(maxResults))
	params.Set("location", SerpAPILocation)
	params.Set("api_key", s.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", s.UserAgent)

	var data serpAPIResponse
	if err := doJSON(clientOrDefault(s.Client, serpAPITimeout), req, &data); err != nil {
		return nil, fmt.Errorf("serpapi: %w", err)
	}

	results := make([]gtmagent.SearchResult, 0, len(data.OrganicResults))
	for _, r := range data.OrganicResults {
		results = append(results, gtmagent.SearchResult{
			Title:   r.Title,
			URL:     r.Link,
			Snippet: r.Snippet,
			Source:  s.Name(),
		})
	}
	return results, nil
}
