package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"golang.org/x/time/rate"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

// RateLimiter limits requests per client IP. It uses Redis when a client
// is given and falls back to an in-process token bucket when Redis is
// absent or failing. The local fallback's cleanup stops when ctx is done.
type RateLimiter struct {
	limiter  *redis_rate.Limiter
	fallback *localLimiter
	limit    redis_rate.Limit
	prefix   string
}

func NewRateLimiter(ctx context.Context, rdb *redis.Client, limit redis_rate.Limit, prefix string) *RateLimiter {
	rl := &RateLimiter{
		fallback: newLocalLimiter(ctx),
		limit:    limit,
		prefix:   prefix,
	}
	if rdb != nil {
		rl.limiter = redis_rate.NewLimiter(rdb)
	}
	return rl
}

func PerMinute(requests, burst int) redis_rate.Limit {
	return redis_rate.Limit{
		Rate:   requests,
		Burst:  burst,
		Period: time.Minute,
	}
}

func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rl.key(c.ClientIP())

		res, err := rl.allow(c.Request.Context(), key)
		if err != nil {
			slog.WarnContext(c.Request.Context(), "rate limiter error, failing open",
				"error", err,
				"key", key,
			)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.limit.Rate))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))

		if res.Allowed == 0 {
			retryAfter := int(res.RetryAfter.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			httperr.Write(c, http.StatusTooManyRequests, "rate_limited",
				fmt.Sprintf("rate limit exceeded, retry after %d seconds", retryAfter))
			c.Abort()
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) key(ip string) string {
	return "ratelimit:" + rl.prefix + ":ip:" + ip
}

func (rl *RateLimiter) allow(ctx context.Context, key string) (*redis_rate.Result, error) {
	if rl.limiter != nil {
		res, err := rl.limiter.Allow(ctx, key, rl.limit)
		if err == nil {
			return res, nil
		}
		slog.DebugContext(ctx, "redis rate limit unavailable, using local limiter", "error", err)
	}
	return rl.fallback.allow(key, rl.limit)
}

// ---------------------------------------------------------------------------
// local fallback
// ---------------------------------------------------------------------------

type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

type localLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	now      func() time.Time
	done     chan struct{}
}

const (
	cleanupInterval = 5 * time.Minute
	entryTTL        = 10 * time.Minute
)

func newLocalLimiter(ctx context.Context) *localLimiter {
	l := &localLimiter{
		limiters: make(map[string]*limiterEntry),
		now:      time.Now,
		done:     make(chan struct{}),
	}
	go l.cleanup(ctx)
	return l
}

func (l *localLimiter) cleanup(ctx context.Context) {
	defer close(l.done)

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.evict()
		}
	}
}

func (l *localLimiter) evict() {
	cutoff := l.now().Add(-entryTTL)

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, entry := range l.limiters {
		if entry.lastAccess.Before(cutoff) {
			delete(l.limiters, key)
		}
	}
}

func (l *localLimiter) allow(key string, limit redis_rate.Limit) (*redis_rate.Result, error) {
	if limit.Rate <= 0 || limit.Period <= 0 {
		return nil, fmt.Errorf("invalid rate limit %+v", limit)
	}

	perSecond := float64(limit.Rate) / limit.Period.Seconds()
	now := l.now()

	l.mu.Lock()
	entry, ok := l.limiters[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(rate.Limit(perSecond), max(limit.Burst, 1))}
		l.limiters[key] = entry
	}
	entry.lastAccess = now
	l.mu.Unlock()

	allowed := entry.limiter.AllowN(now, 1)

	remaining := int(entry.limiter.TokensAt(now))
	if remaining < 0 {
		remaining = 0
	}

	res := &redis_rate.Result{
		Limit:      limit,
		Remaining:  remaining,
		RetryAfter: -1,
		ResetAfter: time.Duration(float64(time.Second) / perSecond),
	}
	if allowed {
		res.Allowed = 1
	} else {
		res.RetryAfter = time.Duration(float64(time.Second) / perSecond)
	}
	return res, nil
}
