package middleware

import (
	"sync"
	"time"

	"expense-manager/internal/errors"
	"expense-manager/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	// OWASP requirement: 5 req/sec prevents brute force and DoS attacks
	defaultRequestsPerSecond = 5
	defaultBurstSize         = 10

	// A client idle this long is forgotten and starts with a fresh bucket
	visitorTTL      = 3 * time.Minute
	cleanupInterval = time.Minute
)

// visitorRegistry keeps one token bucket per client IP
type visitorRegistry struct {
	mu       sync.Mutex
	visitors map[string]*visitorEntry
	rps      rate.Limit
	burst    int
}

type visitorEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	registry = &visitorRegistry{
		visitors: make(map[string]*visitorEntry),
		rps:      defaultRequestsPerSecond,
		burst:    defaultBurstSize,
	}
	cleanupOnce sync.Once
)

// RateLimiter creates a middleware for rate limiting requests per IP
func RateLimiter() echo.MiddlewareFunc {
	cleanupOnce.Do(func() {
		go registry.evictStale()
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !registry.allow(getIP(c)) {
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}
			return next(c)
		}
	}
}

// RateLimiterWithConfig creates a rate limiter with custom configuration
func RateLimiterWithConfig(rps int, burst int) echo.MiddlewareFunc {
	registry.mu.Lock()
	registry.rps = rate.Limit(rps)
	registry.burst = burst
	registry.mu.Unlock()

	return RateLimiter()
}

func (r *visitorRegistry) allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, exists := r.visitors[ip]
	if !exists {
		v = &visitorEntry{limiter: rate.NewLimiter(r.rps, r.burst)}
		r.visitors[ip] = v
	}
	v.lastSeen = time.Now()

	return v.limiter.Allow()
}

func (r *visitorRegistry) evictStale() {
	for {
		time.Sleep(cleanupInterval)

		r.mu.Lock()
		for ip, v := range r.visitors {
			if time.Since(v.lastSeen) > visitorTTL {
				delete(r.visitors, ip)
			}
		}
		r.mu.Unlock()
	}
}

func (r *visitorRegistry) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.visitors = make(map[string]*visitorEntry)
}

func getIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return c.RealIP()
}
