// Package http provides polite HTTP access for gtmagent: a global request
// throttle, a robots.txt gate, a page fetcher and sitemap discovery.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/gtmagent"
)

// DefaultFetchTimeout is the default timeout for page requests.
const DefaultFetchTimeout = 30 * time.Second

// DefaultRobotsTimeout is the default timeout for robots.txt requests.
const DefaultRobotsTimeout = 10 * time.Second

// Ensure Fetcher implements gtmagent.Fetcher at compile time.
var _ gtmagent.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML with a plain HTTP GET after consulting the robots
// gate and the shared throttle. Redirects are followed.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	throttle  gtmagent.Throttle
	robots    gtmagent.RobotsGate
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithClient sets the HTTP client. The client's own timeout is replaced by
// the fetcher timeout.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// WithThrottle sets the throttle waited on before every request.
func WithThrottle(t gtmagent.Throttle) Option {
	return func(f *Fetcher) {
		f.throttle = t
	}
}

// WithRobots sets the robots gate consulted before every request.
func WithRobots(r gtmagent.RobotsGate) Option {
	return func(f *Fetcher) {
		f.robots = r
	}
}

// NewFetcher creates a new Fetcher. Without WithThrottle and WithRobots a
// fetcher gets its own throttle and robots gate sharing its client.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: gtmagent.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{}
	}
	client := *f.client
	client.Timeout = f.timeout
	f.client = &client

	if f.throttle == nil {
		f.throttle = NewThrottle(MinRequestInterval)
	}
	if f.robots == nil {
		f.robots = NewRobotsGate(&http.Client{Timeout: DefaultRobotsTimeout, Transport: client.Transport}, f.throttle, f.userAgent)
	}

	return f
}

// Fetch retrieves the body of the given URL.
// Returns EDISALLOWED if robots.txt forbids the URL and EUNAVAILABLE for
// status codes of 400 and above. Transport errors are returned unchanged.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if !f.robots.IsAllowed(ctx, url) {
		return "", gtmagent.Errorf(gtmagent.EDISALLOWED, "robots.txt disallows %s", url)
	}

	if err := f.throttle.Wait(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", gtmagent.Errorf(gtmagent.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}

	return string(body), nil
}
