package crawl

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/gtmagent"
)

// DefaultRetryDelays returns the backoff delays for transport failures: 1s, 2s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second}
}

// fetchWithRetry fetches url, retrying transport failures after each of the
// given delays. Absent pages (robots refusal or error status) are not
// retried. A nil delays slice means a single attempt.
func fetchWithRetry(ctx context.Context, fetcher gtmagent.Fetcher, url string, delays []time.Duration, logger *slog.Logger) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= len(delays); attempt++ {
		html, err := fetcher.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if gtmagent.IsAbsent(err) || attempt == len(delays) {
			break
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		logger.Debug("retrying fetch",
			"url", url,
			"attempt", attempt+2,
			"err", err,
		)

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
