package api

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitConfig holds rate limiting configuration for an endpoint.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate limit.
	RequestsPerSecond float64
	// BurstSize is the maximum burst size.
	BurstSize int
}

// DefaultRateLimit is a conservative default for unknown origins.
var DefaultRateLimit = RateLimitConfig{RequestsPerSecond: 5.0, BurstSize: 10}

// RateLimiter provides rate limiting for API requests.
// It uses a token bucket with optional backoff for 429 responses.
type RateLimiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	retryAt time.Time
}

// NewRateLimiter creates a rate limiter with the given configuration.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
	}
}

// Wait blocks until a request can be made without exceeding the rate
// limit. It also respects any backoff period set by
// RecordRateLimitError.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	retryAt := r.retryAt
	r.mu.Unlock()

	if time.Now().Before(retryAt) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Until(retryAt)):
		}
	}

	return r.limiter.Wait(ctx)
}

// RecordRateLimitError records a rate limit error and sets a backoff
// period. Call this when receiving a 429 response.
func (r *RateLimiter) RecordRateLimitError(retryAfterSeconds int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if retryAfterSeconds <= 0 {
		// Default backoff: 60 seconds
		retryAfterSeconds = 60
	}

	r.retryAt = time.Now().Add(time.Duration(retryAfterSeconds) * time.Second)
}

// Allow checks if a request can be made immediately without blocking.
func (r *RateLimiter) Allow() bool {
	r.mu.Lock()
	retryAt := r.retryAt
	r.mu.Unlock()

	if time.Now().Before(retryAt) {
		return false
	}

	return r.limiter.Allow()
}
