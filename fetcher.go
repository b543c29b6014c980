package gtmagent

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch returns the response body for the URL.
	// Returns EDISALLOWED when robots.txt forbids the URL and EUNAVAILABLE
	// when the server answers with an error status. Any other error is a
	// transport failure.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// RobotsGate decides whether a URL may be fetched.
type RobotsGate interface {
	// IsAllowed reports whether the host's robots.txt permits the URL.
	// Implementations fail open when the policy cannot be determined.
	IsAllowed(ctx context.Context, url string) bool
}

// Throttle enforces a minimum interval between outgoing requests.
type Throttle interface {
	// Wait blocks until the next request may be sent.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context) error
}

// IsAbsent reports whether a fetch error means "no content" rather than a
// transport failure.
func IsAbsent(err error) bool {
	switch ErrorCode(err) {
	case EDISALLOWED, EUNAVAILABLE:
		return true
	}
	return false
}
