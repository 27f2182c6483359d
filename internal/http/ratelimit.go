package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// ipRateLimiter counts requests per client IP over a fixed window.
type ipRateLimiter struct {
	mu      sync.Mutex
	window  time.Duration
	max     int
	clients map[string]*windowCounter
	now     func() time.Time
}

type windowCounter struct {
	start time.Time
	count int
}

func newIPRateLimiter(window time.Duration, max int) *ipRateLimiter {
	return &ipRateLimiter{
		window:  window,
		max:     max,
		clients: make(map[string]*windowCounter),
		now:     time.Now,
	}
}

// allow records a hit for ip and reports whether it stays under the
// window limit. Expired windows reset; stale entries are pruned lazily.
func (l *ipRateLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	counter, ok := l.clients[ip]
	if !ok || now.Sub(counter.start) >= l.window {
		if len(l.clients) > 10000 {
			l.prune(now)
		}
		l.clients[ip] = &windowCounter{start: now, count: 1}
		return true
	}

	counter.count++
	return counter.count <= l.max
}

func (l *ipRateLimiter) prune(now time.Time) {
	for ip, counter := range l.clients {
		if now.Sub(counter.start) >= l.window {
			delete(l.clients, ip)
		}
	}
}

// middleware rejects over-limit clients with the plain text body the
// frontend surfaces verbatim.
func (l *ipRateLimiter) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.String(http.StatusTooManyRequests, "Too many requests from this IP, please try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}
