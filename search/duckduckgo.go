package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/gtmagent"
)

// DuckDuckGoBaseURL is the JavaScript-free DuckDuckGo results page.
const DuckDuckGoBaseURL = "https://html.duckduckgo.com/html/"

// DuckDuckGo search settings: UAE English region, moderate safe search.
const (
	DuckDuckGoRegion     = "ae-en"
	DuckDuckGoSafeSearch = "-1"
)

const duckDuckGoTimeout = 20 * time.Second

var _ gtmagent.SearchProvider = (*DuckDuckGo)(nil)

// DuckDuckGo scrapes the DuckDuckGo HTML results page. It needs no key.
type DuckDuckGo struct {
	UserAgent string
	BaseURL   string
	Client    *http.Client
}

// NewDuckDuckGo creates a DuckDuckGo provider with the production endpoint.
func NewDuckDuckGo(userAgent string) *DuckDuckGo {
	return &DuckDuckGo{UserAgent: userAgent, BaseURL: DuckDuckGoBaseURL}
}

func (d *DuckDuckGo) Name() string { return "duckduckgo" }

func (d *DuckDuckGo) Search(ctx context.Context, query string, maxResults int) ([]gtmagent.SearchResult, error) {
	form := url.Values{}
	form.Set("q", query)
	form.Set("kl", DuckDuckGoRegion)
	form.Set("kp", DuckDuckGoSafeSearch)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.BaseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", d.UserAgent)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := clientOrDefault(d.Client, duckDuckGoTimeout).Do(req)
	if err != nil {
		return nil, fmt.Errorf("duckduckgo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("duckduckgo: HTTP %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("duckduckgo: parse results: %w", err)
	}

	var results []gtmagent.SearchResult
	doc.Find(".result").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if s.HasClass("result--ad") {
			return true
		}
		link := s.Find("a.result__a").First()
		href, ok := link.Attr("href")
		if !ok {
			return true
		}
		results = append(results, gtmagent.SearchResult{
			Title:   strings.TrimSpace(link.Text()),
			URL:     unwrapRedirect(href),
			Snippet: strings.TrimSpace(s.Find(".result__snippet").First().Text()),
			Source:  d.Name(),
		})
		return len(results) < maxResults
	})
	return results, nil
}

// unwrapRedirect returns the target of a DuckDuckGo /l/?uddg= redirect link,
// or href unchanged when it is a direct link.
func unwrapRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" && strings.HasPrefix(u.Path, "/l/") {
		return target
	}
	if u.Scheme == "" && u.Host != "" {
		u.Scheme = "https"
		return u.String()
	}
	return href
}
