package middleware

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter decides whether a client may make another request in the current window
type Limiter interface {
	Allow(ctx context.Context, clientID string) (bool, error)
}

// RateLimit returns a middleware that rejects clients over their quota with 429.
// Authenticated callers are keyed by user id, everyone else by IP, so it must
// run after OptionalAuth. Proxy headers are only honoured when trustProxy is set.
// A limiter error lets the request through.
func RateLimit(limiter Limiter, trustProxy bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientID := "ip:" + getClientIP(r, trustProxy)
			if userID := GetUserID(r); userID > 0 {
				clientID = "user:" + strconv.FormatInt(userID, 10)
			}

			allowed, err := limiter.Allow(r.Context(), clientID)
			if err != nil {
				log.Printf("[RATELIMIT] limiter unavailable, allowing %s: %v", clientID, err)
				allowed = true
			}
			if !allowed {
				http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// MemoryLimiter is a fixed-window limiter local to one process
type MemoryLimiter struct {
	clients  map[string]*clientLimit
	now      func() time.Time
	requests int
	window   time.Duration
	mu       sync.Mutex
}

type clientLimit struct {
	resetTime time.Time
	count     int
}

// NewMemoryLimiter creates a limiter allowing requests per window for each client.
// Expired entries are swept every window until ctx is cancelled.
func NewMemoryLimiter(ctx context.Context, requests int, window time.Duration) *MemoryLimiter {
	rl := &MemoryLimiter{
		clients:  make(map[string]*clientLimit),
		now:      func() time.Time { return time.Now().UTC() },
		requests: requests,
		window:   window,
	}

	go rl.cleanup(ctx)

	return rl
}

// Allow never returns an error
func (rl *MemoryLimiter) Allow(_ context.Context, clientID string) (bool, error) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()

	client, exists := rl.clients[clientID]
	if !exists || now.After(client.resetTime) {
		rl.clients[clientID] = &clientLimit{
			count:     1,
			resetTime: now.Add(rl.window),
		}
		return true, nil
	}

	if client.count < rl.requests {
		client.count++
		return true, nil
	}

	return false, nil
}

func (rl *MemoryLimiter) cleanup(ctx context.Context) {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.mu.Lock()
			now := rl.now()
			for clientID, client := range rl.clients {
				if now.After(client.resetTime) {
					delete(rl.clients, clientID)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// RedisLimiter is a fixed-window limiter shared by every replica through Redis
type RedisLimiter struct {
	client   *redis.Client
	prefix   string
	requests int
	window   time.Duration
}

// NewRedisLimiter creates a limiter storing its counters under prefix
func NewRedisLimiter(client *redis.Client, prefix string, requests int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client:   client,
		prefix:   prefix,
		requests: requests,
		window:   window,
	}
}

// Allow increments the client's counter for the current window.
// The first hit of a window sets the key's expiry.
func (rl *RedisLimiter) Allow(ctx context.Context, clientID string) (bool, error) {
	key := rl.prefix + clientID

	pipe := rl.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, rl.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to update rate limit counter: %w", err)
	}

	return incr.Val() <= int64(rl.requests), nil
}

// getClientIP extracts the client IP from the request without its port.
// X-Forwarded-For and X-Real-IP are client-controlled unless a proxy rewrites them.
func getClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		// The left-most entry is the original client
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			first, _, _ := strings.Cut(forwarded, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}
		if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
			return realIP
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
