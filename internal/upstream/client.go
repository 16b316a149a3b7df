// Package upstream builds the outbound HTTP client shared by the model
// provider and LMS clients, and classifies the errors it produces.
package upstream

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// NewHTTPClient returns an HTTP client whose every call is bounded by timeout.
// A requestsPerMinute of 0 means outbound calls are not rate limited.
func NewHTTPClient(timeout time.Duration, requestsPerMinute int) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: NewRateLimitedTransport(http.DefaultTransport, requestsPerMinute),
	}
}

// RateLimitedTransport delays outbound requests using a token bucket.
type RateLimitedTransport struct {
	base    http.RoundTripper
	limiter *rate.Limiter
}

// NewRateLimitedTransport wraps base. A requestsPerMinute of 0 disables limiting.
func NewRateLimitedTransport(base http.RoundTripper, requestsPerMinute int) *RateLimitedTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	t := &RateLimitedTransport{base: base}
	if requestsPerMinute > 0 {
		t.limiter = rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), requestsPerMinute)
	}
	return t
}

// RoundTrip waits for a token (or the request context to end) and forwards the request.
func (t *RateLimitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(req.Context()); err != nil {
			return nil, err
		}
	}
	return t.base.RoundTrip(req)
}
