package transport

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiter paces outgoing calls per backend collection, so a burst of
// detail lookups cannot starve the login or booking calls.
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
}

// NewRateLimiter disables pacing when requestsPerSecond is not positive.
func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	limit := rate.Limit(requestsPerSecond)
	if requestsPerSecond <= 0 {
		limit = rate.Inf
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    burst,
	}
}

func (r *RateLimiter) Wait(ctx context.Context, endpoint string) error {
	key := collectionOf(endpoint)

	r.mu.Lock()
	limiter, exists := r.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(r.limit, r.burst)
		r.limiters[key] = limiter
	}
	r.mu.Unlock()

	return limiter.Wait(ctx)
}

// collectionOf maps "/api/doctors/12" to "/api/doctors".
func collectionOf(endpoint string) string {
	path := endpoint
	if idx := strings.IndexAny(path, "?#"); idx >= 0 {
		path = path[:idx]
	}
	segments := strings.SplitN(strings.Trim(path, "/"), "/", 3)
	if len(segments) > 2 {
		segments = segments[:2]
	}
	return "/" + strings.Join(segments, "/")
}
