package middleware

import (
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// minIdleTimeout is the shortest time a client's bucket is kept after its last request
const minIdleTimeout = 3 * time.Minute

type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientLimiter keeps one token bucket per client key. Buckets idle for
// longer than it takes them to refill are dropped, so the map only holds
// recently active clients.
type ClientLimiter struct {
	clients   map[string]*clientEntry
	mu        sync.Mutex
	r         rate.Limit
	b         int
	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
}

// NewClientLimiter allows r requests per second per client with bursts of b
func NewClientLimiter(r rate.Limit, b int) *ClientLimiter {
	return &ClientLimiter{
		clients: make(map[string]*clientEntry),
		r:       r,
		b:       b,
		idle:    idleTimeout(r, b),
		now:     time.Now,
	}
}

// idleTimeout is how long an untouched bucket takes to fill up again, with a floor.
// Dropping a bucket after that is indistinguishable from keeping it.
func idleTimeout(r rate.Limit, b int) time.Duration {
	if r <= 0 || r == rate.Inf {
		return minIdleTimeout
	}
	refill := float64(b) / float64(r) * float64(time.Second)
	if refill >= math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	return max(time.Duration(refill), minIdleTimeout)
}

func (l *ClientLimiter) getLimiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.idle {
		l.sweep(now)
	}

	entry, exists := l.clients[key]
	if !exists {
		entry = &clientEntry{limiter: rate.NewLimiter(l.r, l.b)}
		l.clients[key] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

// sweep drops idle buckets; callers hold mu
func (l *ClientLimiter) sweep(now time.Time) {
	for key, entry := range l.clients {
		if now.Sub(entry.lastSeen) >= l.idle {
			delete(l.clients, key)
		}
	}
	l.lastSweep = now
}

// Len returns the number of clients currently tracked
func (l *ClientLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// Allow reports whether the client identified by key may make a request now
func (l *ClientLimiter) Allow(key string) bool {
	return l.getLimiter(key).Allow()
}

// RateLimit rejects requests with 429 once a client IP exhausts its bucket.
// The client IP honours forwarding headers only from the engine's trusted proxies.
func RateLimit(limiter *ClientLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow("ip:" + c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "RATE_LIMITED",
					"message": "Too many requests",
				},
			})
			return
		}
		c.Next()
	}
}
