package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/redromiee/bag-tracker/internal/apierror"

	"github.com/gin-gonic/gin"
)

// RateLimiter caps requests per client address over a sliding window. Each
// address maps to the timestamps of its recent requests; the list is pruned
// lazily on every check. Addresses are never evicted once seen — the table
// grows slowly for the life of the process, a known and accepted limit.
//
// One instance is created at startup and injected where needed; there is no
// package-level state.
type RateLimiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	hits   map[string][]time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:  limit,
		window: window,
		hits:   make(map[string][]time.Time),
	}
}

// Allow records one request from addr and reports whether it is within the
// limit. Rejected requests are not recorded.
func (rl *RateLimiter) Allow(addr string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-rl.window)

	recent := rl.hits[addr][:0]
	for _, t := range rl.hits[addr] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}
	if len(recent) >= rl.limit {
		rl.hits[addr] = recent
		return false
	}
	rl.hits[addr] = append(recent, now)
	return true
}

// Middleware rejects over-limit requests with the RateLimited error body.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusOK, apierror.Body(
				apierror.New(apierror.CodeRateLimited, "too many attempts, try again in a minute")))
			return
		}
		c.Next()
	}
}
