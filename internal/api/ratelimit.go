package api

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// SubmitLimiter throttles public form submissions per client IP with a
// token bucket: each IP starts with burst tokens and regains rate
// tokens per second, capped at burst.
type SubmitLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	rate    float64
	burst   int
}

type bucket struct {
	seen      time.Time
	remaining float64
}

func NewSubmitLimiter(rate float64, burst int) *SubmitLimiter {
	return &SubmitLimiter{
		buckets: make(map[string]*bucket),
		rate:    rate,
		burst:   burst,
	}
}

// Middleware returns the gin middleware enforcing the limit. A rate or
// burst of zero disables throttling entirely.
func (l *SubmitLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l.rate <= 0 || l.burst <= 0 {
			c.Next()
			return
		}

		l.mu.Lock()
		defer l.mu.Unlock()

		now := time.Now()

		// Drop buckets idle long enough to have fully refilled.
		refillWindow := time.Duration(float64(l.burst)/l.rate) * time.Second
		for ip, b := range l.buckets {
			if now.Sub(b.seen) > refillWindow {
				delete(l.buckets, ip)
			}
		}

		ip := c.ClientIP()
		b, ok := l.buckets[ip]
		if !ok {
			b = &bucket{seen: now, remaining: float64(l.burst)}
			l.buckets[ip] = b
		} else {
			elapsed := now.Sub(b.seen)
			b.seen = now
			if elapsed > 0 {
				b.remaining += elapsed.Seconds() * l.rate
				if b.remaining > float64(l.burst) {
					b.remaining = float64(l.burst)
				}
			}
		}

		b.remaining--
		if b.remaining < 0 {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "Too many requests, please try again later",
			})
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(l.burst))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(math.Floor(b.remaining))))

		c.Next()
	}
}
