package http

import (
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const clientLimiterIdleTTL = 10 * time.Minute

var ErrRateLimitExceeded = errors.New("rate limit exceeded")

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type clientRateLimiter struct {
	mu          sync.Mutex
	limit       rate.Limit
	burst       int
	clients     map[string]*clientLimiter
	lastCleanup time.Time
}

// WithRateLimit limits requests to the handler per client IP with a token bucket.
func WithRateLimit(limit rate.Limit, burst int) HandlerOption {
	limiter := &clientRateLimiter{
		limit:   limit,
		burst:   burst,
		clients: make(map[string]*clientLimiter),
	}

	return WithHandlerMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.allow(clientIP(r), time.Now()) {
				handler.ServeHTTP(w, r)
				return
			}

			meta := getHandlerMetadata(r.Context())
			meta.Code = http.StatusTooManyRequests
			meta.Error = ErrRateLimitExceeded
			writeErrorResponse(w, http.StatusTooManyRequests)
		})
	})
}

func (l *clientRateLimiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastCleanup) > clientLimiterIdleTTL {
		for key, client := range l.clients {
			if now.Sub(client.lastSeen) > clientLimiterIdleTTL {
				delete(l.clients, key)
			}
		}
		l.lastCleanup = now
	}

	client, ok := l.clients[ip]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = client
	}
	client.lastSeen = now

	return client.limiter.AllowN(now, 1)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
