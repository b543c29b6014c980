package http

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/fwojciec/gtmagent"
	"github.com/temoto/robotstxt"
)

// maxRobotsBodyBytes limits the size of robots.txt responses we will read.
const maxRobotsBodyBytes = 512 * 1024

// Ensure RobotsGate implements gtmagent.RobotsGate at compile time.
var _ gtmagent.RobotsGate = (*RobotsGate)(nil)

// RobotsGate checks URLs against their host's robots.txt. Policies are cached
// per robots.txt URL for the lifetime of the gate. A missing, broken or
// unreachable robots.txt allows everything.
type RobotsGate struct {
	client    *http.Client
	throttle  gtmagent.Throttle
	userAgent string
	logger    *slog.Logger

	mu    sync.Mutex
	cache map[string]*robotstxt.RobotsData // nil entry means allow all
}

// NewRobotsGate creates a RobotsGate. The throttle, if not nil, is waited on
// before every robots.txt request.
func NewRobotsGate(client *http.Client, throttle gtmagent.Throttle, userAgent string) *RobotsGate {
	if client == nil {
		client = &http.Client{Timeout: DefaultRobotsTimeout}
	}
	if userAgent == "" {
		userAgent = gtmagent.DefaultUserAgent
	}
	return &RobotsGate{
		client:    client,
		throttle:  throttle,
		userAgent: userAgent,
		logger:    slog.New(slog.DiscardHandler),
		cache:     make(map[string]*robotstxt.RobotsData),
	}
}

// SetLogger sets the logger used to report robots.txt failures.
func (g *RobotsGate) SetLogger(logger *slog.Logger) {
	g.logger = logger
}

// IsAllowed reports whether the URL may be fetched with the gate's user agent.
func (g *RobotsGate) IsAllowed(ctx context.Context, rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return true
	}
	data := g.policy(ctx, u)
	if data == nil {
		return true
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}
	return data.TestAgent(path, g.userAgent)
}

// Sitemaps returns the Sitemap: directives of the URL's host robots.txt.
func (g *RobotsGate) Sitemaps(ctx context.Context, rawURL string) []string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return nil
	}
	data := g.policy(ctx, u)
	if data == nil {
		return nil
	}
	var out []string
	for _, s := range data.Sitemaps {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// policy returns the cached robots.txt for u's host, loading it on first use.
// Nothing is cached when ctx ends mid-load.
func (g *RobotsGate) policy(ctx context.Context, u *url.URL) *robotstxt.RobotsData {
	robotsURL := u.Scheme + "://" + u.Host + "/robots.txt"

	g.mu.Lock()
	data, ok := g.cache[robotsURL]
	g.mu.Unlock()
	if ok {
		return data
	}

	data, err := g.load(ctx, robotsURL)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		g.logger.Debug("robots.txt unavailable, allowing all",
			"url", robotsURL,
			"err", err,
		)
	}
	g.mu.Lock()
	g.cache[robotsURL] = data
	g.mu.Unlock()
	return data
}

// load fetches and parses robots.txt. A nil result with a nil error means
// the host publishes no policy.
func (g *RobotsGate) load(ctx context.Context, robotsURL string) (*robotstxt.RobotsData, error) {
	if g.throttle != nil {
		if err := g.throttle.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRobotsBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading robots.txt: %w", err)
	}

	data, err := robotstxt.FromBytes(body)
	if err != nil {
		return nil, fmt.Errorf("parsing robots.txt: %w", err)
	}
	return data, nil
}
