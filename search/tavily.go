package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/fwojciec/gtmagent"
)

// TavilyBaseURL is the Tavily search endpoint.
const TavilyBaseURL = "https://api.tavily.com/search"

const tavilyTimeout = 30 * time.Second

var _ gtmagent.SearchProvider = (*Tavily)(nil)

// Tavily queries the Tavily search API.
type Tavily struct {
	APIKey    string
	UserAgent string
	BaseURL   string
	Client    *http.Client
}

// NewTavily creates a Tavily provider with the production endpoint.
func NewTavily(apiKey, userAgent string) *Tavily {
	return &Tavily{APIKey: apiKey, UserAgent: userAgent, BaseURL: TavilyBaseURL}
}

func (t *Tavily) Name() string { return "tavily" }

type tavilyRequest struct {
	APIKey      string `json:"api_key"`
	Query       string `json:"query"`
	MaxResults  int    `json:"max_results"`
	SearchDepth string `json:"search_depth"`
}

type tavilyResponse struct {
	Results []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Content string `json:"content"`
	} `json:"results"`
}

func (t *Tavily) Search(ctx context.Context, query string, maxResults int) ([]gtmagent.SearchResult, error) {
	payload, err := json.Marshal(tavilyRequest{
		APIKey:      t.APIKey,
		Query:       query,
		MaxResults:  maxResults,
		SearchDepth: "basic",
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.BaseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", t.UserAgent)
	req.Header.Set("Content-Type", "application/json")

	var data tavilyResponse
	if err := doJSON(clientOrDefault(t.Client, tavilyTimeout), req, &data); err != nil {
		return nil, fmt.Errorf("tavily: %w", err)
	}

	results := make([]gtmagent.SearchResult, 0, len(data.Results))
	for _, r := range data.Results {
		results = append(results, gtmagent.SearchResult{
			Title:   r.Title,
			URL:     r.URL,
			Snippet: r.Content,
			Source:  t.Name(),
		})
	}
	return results, nil
}
