package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pageza/delight/backend/internal/logger"
)

// RateLimitConfig defines configuration for rate limiting
type RateLimitConfig struct {
	// Window is the time window for rate limiting
	Window time.Duration
	// Limit is the maximum number of requests allowed in the window
	Limit int
	// Key prefix for Redis keys
	KeyPrefix string
}

// RateLimiter counts requests per caller in fixed windows stored in Redis
type RateLimiter struct {
	redis  *redis.Client
	config RateLimitConfig
}

// NewRateLimiter creates a new rate limiter instance
func NewRateLimiter(redisClient *redis.Client, config RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		redis:  redisClient,
		config: config,
	}
}

// NewWriteRateLimiter limits inventory writes to perMinute per staff member
func NewWriteRateLimiter(redisClient *redis.Client, perMinute int) *RateLimiter {
	return NewRateLimiter(redisClient, RateLimitConfig{
		Window:    time.Minute,
		Limit:     perMinute,
		KeyPrefix: "rate_limit:inventory_write",
	})
}

// Middleware enforces the limit. Authenticated staff are counted by id,
// anyone else by client IP. Redis failures let the request through.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := c.ClientIP()
		if staffID, ok := c.Get(StaffIDKey); ok {
			caller = fmt.Sprintf("%v", staffID)
		}

		allowed, remaining, resetTime, err := rl.IsAllowed(c.Request.Context(), caller)
		if err != nil {
			logger.Warn("rate limit check failed", zap.Error(err), zap.String("caller", caller))
			c.Header("X-RateLimit-Error", "rate limit check failed")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"message":     fmt.Sprintf("You have exceeded the limit of %d changes per %v", rl.config.Limit, rl.config.Window),
				"retry_after": int(time.Until(resetTime).Seconds()),
			})
			return
		}

		c.Next()
	}
}

// Limit is the number of requests allowed per window
func (rl *RateLimiter) Limit() int {
	return rl.config.Limit
}

func (rl *RateLimiter) key(caller string, windowStart time.Time) string {
	return fmt.Sprintf("%s:%s:%d", rl.config.KeyPrefix, caller, windowStart.Unix())
}

// IsAllowed counts a request from caller.
// Returns: allowed, remaining requests, reset time, error
func (rl *RateLimiter) IsAllowed(ctx context.Context, caller string) (bool, int, time.Time, error) {
	windowStart := time.Now().Truncate(rl.config.Window)
	key := rl.key(caller, windowStart)

	pipe := rl.redis.Pipeline()
	incrCmd := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, rl.config.Window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, time.Time{}, err
	}

	count := int(incrCmd.Val())
	remaining := rl.config.Limit - count
	if remaining < 0 {
		remaining = 0
	}
	return count <= rl.config.Limit, remaining, windowStart.Add(rl.config.Window), nil
}

// GetRemainingRequests returns how many requests caller has left in the
// current window without counting one
func (rl *RateLimiter) GetRemainingRequests(ctx context.Context, caller string) (int, time.Time, error) {
	windowStart := time.Now().Truncate(rl.config.Window)
	resetTime := windowStart.Add(rl.config.Window)

	count, err := rl.redis.Get(ctx, rl.key(caller, windowStart)).Int()
	if err == redis.Nil {
		return rl.config.Limit, resetTime, nil
	}
	if err != nil {
		return 0, time.Time{}, err
	}

	remaining := rl.config.Limit - count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, resetTime, nil
}
