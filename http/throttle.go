package http

import (
	"context"
	"time"

	"github.com/fwojciec/gtmagent"
	"golang.org/x/time/rate"
)

// MinRequestInterval is the minimum delay between any two outgoing requests.
const MinRequestInterval = 800 * time.Millisecond

var _ gtmagent.Throttle = (*Throttle)(nil)

// Throttle enforces a single minimum interval between requests regardless of
// host. It is a token bucket with a burst of 1, so the first call passes
// immediately and every later call waits until the interval has elapsed
// since the previous one.
type Throttle struct {
	limiter *rate.Limiter
}

// NewThrottle creates a Throttle with the given minimum interval.
func NewThrottle(interval time.Duration) *Throttle {
	return &Throttle{
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Wait blocks until the interval since the previous request has elapsed.
// Returns an error if the context is canceled before the wait completes.
func (t *Throttle) Wait(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}
