package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/chybatronik/goAttioMCP/internal/logging"
)

// RateLimiter implements IP-based rate limiting for the SSE transport
type RateLimiter struct {
	visitors map[string]*Visitor
	mu       sync.RWMutex
	rate     rate.Limit
	burst    int
}

// Visitor tracks rate limiting state for a single IP
type Visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// SecurityRateLimit creates a rate limiting middleware.
// requestsPerSecond is the sustained per-IP rate; burst caps short spikes.
func SecurityRateLimit(requestsPerSecond float64, burst int, logger *logging.Logger) func(http.Handler) http.Handler {
	limiter := &RateLimiter{
		visitors: make(map[string]*Visitor),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
	}

	go limiter.cleanupVisitors()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r)
			if ip == "" {
				// Can't attribute the request to an IP; let it through
				logger.Warn("rate limiting: unable to extract IP", "remote_addr", r.RemoteAddr)
				next.ServeHTTP(w, r)
				return
			}

			if !limiter.Allow(ip) {
				logger.Warn("rate limit exceeded", "ip", ip)
				writeRateLimitErrorResponse(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Allow checks if an IP is allowed to make a request
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Rate 0 disables limiting
	if rl.rate == 0 {
		return true
	}

	visitor, exists := rl.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(rl.rate, rl.burst)
		rl.visitors[ip] = &Visitor{limiter, time.Now()}
		return limiter.Allow()
	}

	visitor.lastSeen = time.Now()
	return visitor.limiter.Allow()
}

// cleanupVisitors removes old visitors to prevent memory leaks
func (rl *RateLimiter) cleanupVisitors() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		for ip, visitor := range rl.visitors {
			if time.Since(visitor.lastSeen) > 10*time.Minute {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// extractIP extracts the real client IP from request
func extractIP(r *http.Request) string {
	// X-Forwarded-For can contain multiple IPs, take the first one
	xff := r.Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		ip := strings.TrimSpace(ips[0])
		if isValidIP(ip) {
			return ip
		}
	}

	xri := r.Header.Get("X-Real-IP")
	if xri != "" && isValidIP(xri) {
		return xri
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		if isValidIP(r.RemoteAddr) {
			return r.RemoteAddr
		}
		return ""
	}

	if isValidIP(host) {
		return host
	}

	return ""
}

// isValidIP checks if the string is a valid IP address
func isValidIP(ip string) bool {
	return net.ParseIP(ip) != nil
}

// writeRateLimitErrorResponse writes a rate limit error response
func writeRateLimitErrorResponse(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Retry-After", "60")
	w.WriteHeader(http.StatusTooManyRequests)

	json.NewEncoder(w).Encode(map[string]string{
		"error": "Too many requests",
		"code":  "RATE_LIMIT_EXCEEDED",
	})
}
