package http

import (
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimiter is a custom http.RoundTripper that paces outgoing requests with a token bucket.
type RateLimiter struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// limiter is shared by every request going through this transport.
	limiter *rate.Limiter
}

// NewRateLimiter wraps next so that at most requestsPerSecond requests are sent on average,
// with bursts of up to burst requests. A non-positive rate returns next unchanged.
func NewRateLimiter(next http.RoundTripper, requestsPerSecond float64, burst int) http.RoundTripper {
	if requestsPerSecond <= 0 {
		return next
	}

	if burst <= 0 {
		burst = 1
	}

	return &RateLimiter{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

// RoundTrip waits for a slot, honouring the request context, and forwards the request.
func (t *RateLimiter) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	return t.next.RoundTrip(req)
}
