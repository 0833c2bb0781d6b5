package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"social-workflow-web/internal/delivery/http/response"
	"social-workflow-web/internal/domain"
	"social-workflow-web/pkg/logger"
	"social-workflow-web/pkg/redis"
	"social-workflow-web/pkg/security"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

const visitorTTL = 10 * time.Minute

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Custom key extractor (default: IP-based)
	KeyFunc func(*gin.Context) string
	// Key prefix for Redis (default: "rl:ip:")
	KeyPrefix string
	// Whether to fail closed (reject) when Redis is unavailable
	FailClosed bool
}

// Lua script for atomic increment with TTL on first set
// KEYS[1] = counter key
// ARGV[1] = TTL in seconds
// Returns: [current_count, ttl_remaining]
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

// GlobalRateLimitConfig limits every request per client IP.
func GlobalRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:ip:",
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// SubmitRateLimitConfig limits signup submissions per session, falling back
// to the client IP when the request carries no session.
func SubmitRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:submit:",
		KeyFunc: func(c *gin.Context) string {
			if id := SessionID(c); id != "" {
				return id
			}
			return c.ClientIP()
		},
	}
}

// localLimiter is the in-process fallback: one token bucket per key that
// refills Limit tokens per Window.
type localLimiter struct {
	mu          sync.Mutex
	limit       rate.Limit
	burst       int
	window      time.Duration
	visitors    map[string]*visitor
	lastCleanup time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newLocalLimiter(config RateLimitConfig) *localLimiter {
	return &localLimiter{
		limit:    rate.Limit(float64(config.Limit) / config.Window.Seconds()),
		burst:    config.Limit,
		window:   config.Window,
		visitors: make(map[string]*visitor),
	}
}

// allow reports whether key may proceed, the tokens left and when the bucket is full again.
func (l *localLimiter) allow(key string, now time.Time) (bool, int, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now

	if now.Sub(l.lastCleanup) > time.Minute {
		for k, other := range l.visitors {
			if now.Sub(other.lastSeen) > visitorTTL {
				delete(l.visitors, k)
			}
		}
		l.lastCleanup = now
	}

	allowed := v.limiter.AllowN(now, 1)
	tokens := v.limiter.TokensAt(now)
	remaining := int(tokens)
	if remaining < 0 {
		remaining = 0
	}
	missing := float64(l.burst) - tokens
	resetAt := now
	if missing > 0 && l.limit > 0 {
		resetAt = now.Add(time.Duration(missing / float64(l.limit) * float64(time.Second)))
	}
	return allowed, remaining, resetAt
}

// RateLimitMiddleware creates a rate limiting middleware with the given config.
// Uses Redis when available, falls back to in-memory token buckets when not.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	if config.Limit <= 0 || config.Window <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	local := newLocalLimiter(config)

	return func(c *gin.Context) {
		key := config.KeyFunc(c)
		now := time.Now()

		var (
			allowed   bool
			remaining int
			resetAt   time.Time
		)

		redisClient := redis.Client()
		if redisClient != nil {
			count, reset, err := checkRateLimitRedis(c.Request.Context(), redisClient, config.KeyPrefix+key, config)
			if err != nil {
				if config.FailClosed {
					logger.Log.Error("Rate limit store unavailable", "error", err, "path", c.FullPath())
					response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.", nil)
					c.Abort()
					return
				}
				security.DefaultLogger().Log(c.Request.Context(), security.SecurityEvent{
					Event:     security.EventRateLimitDegraded,
					IP:        c.ClientIP(),
					RequestID: c.GetString(string(domain.KeyRequestID)),
					Details:   map[string]interface{}{"error": err.Error(), "prefix": config.KeyPrefix},
				})
				allowed, remaining, resetAt = local.allow(key, now)
			} else {
				allowed = count <= config.Limit
				remaining = config.Limit - count
				if remaining < 0 {
					remaining = 0
				}
				resetAt = reset
			}
		} else {
			allowed, remaining, resetAt = local.allow(key, now)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		if !allowed {
			retryAfter := int(time.Until(resetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			security.DefaultLogger().LogRateLimitTriggered(
				c.Request.Context(),
				c.ClientIP(),
				c.Request.UserAgent(),
				c.GetString(string(domain.KeyRequestID)),
				c.Request.URL.Path,
			)
			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// checkRateLimitRedis checks rate limit using Redis with atomic Lua script
func checkRateLimitRedis(ctx context.Context, client *goredis.Client, key string, config RateLimitConfig) (int, time.Time, error) {
	ttlSeconds := int(config.Window.Seconds())
	if ttlSeconds < 1 {
		ttlSeconds = 1
	}

	result, err := client.Eval(ctx, rateLimitLuaScript, []string{key}, ttlSeconds).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result format")
	}

	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	return int(count), time.Now().Add(time.Duration(ttl) * time.Second), nil
}
