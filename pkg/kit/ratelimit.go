package kit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// IPRateLimiter caps requests per client IP with a fixed window: a
// counter per IP that resets when its window expires. Coarser than a
// sliding window but O(1) per request and nothing to prune.
type IPRateLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	windows map[string]*ipWindow
}

type ipWindow struct {
	start time.Time
	count int
}

func NewIPRateLimiter(limit int, windowSeconds int) *IPRateLimiter {
	return &IPRateLimiter{
		limit:   limit,
		window:  time.Duration(windowSeconds) * time.Second,
		windows: make(map[string]*ipWindow),
	}
}

func (l *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.allow(clientIP(r), time.Now()) {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *IPRateLimiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	win := l.windows[ip]
	if win == nil || now.Sub(win.start) >= l.window {
		l.windows[ip] = &ipWindow{start: now, count: 1}
		l.sweep(now)
		return true
	}

	if win.count >= l.limit {
		return false
	}
	win.count++
	return true
}

// sweep drops expired windows so the map tracks active clients only.
// Called under mu, and only on the reset path to keep the hot path flat.
func (l *IPRateLimiter) sweep(now time.Time) {
	for ip, win := range l.windows {
		if now.Sub(win.start) >= l.window {
			delete(l.windows, ip)
		}
	}
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if first, _, found := strings.Cut(xff, ","); found || first != "" {
			return strings.TrimSpace(first)
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}
