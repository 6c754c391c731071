package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/delight/backend/internal/testhelpers"
)

func TestRateLimiterIsAllowed(t *testing.T) {
	client := testhelpers.SetupRedis(t)
	limiter := NewRateLimiter(client, RateLimitConfig{
		Window:    time.Minute,
		Limit:     3,
		KeyPrefix: "rate_limit:test:" + uuid.NewString(),
	})
	ctx := context.Background()

	remaining, _, err := limiter.GetRemainingRequests(ctx, "staff-1")
	require.NoError(t, err)
	assert.Equal(t, 3, remaining)

	for i := 0; i < 3; i++ {
		allowed, _, _, err := limiter.IsAllowed(ctx, "staff-1")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d", i+1)
	}

	allowed, remaining, reset, err := limiter.IsAllowed(ctx, "staff-1")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)
	assert.True(t, reset.After(time.Now()))

	allowed, _, _, err = limiter.IsAllowed(ctx, "staff-2")
	require.NoError(t, err)
	assert.True(t, allowed, "callers are counted separately")
}

func TestRateLimiterMiddleware(t *testing.T) {
	client := testhelpers.SetupRedis(t)
	limiter := NewWriteRateLimiter(client, 2)
	staffID := uuid.New()

	router := gin.New()
	router.POST("/", func(c *gin.Context) {
		c.Set(StaffIDKey, staffID)
		c.Next()
	}, limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))
		codes = append(codes, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}
	assert.Equal(t, []int{http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests}, codes)
}

func TestRateLimiterFailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	limiter := NewWriteRateLimiter(client, 1)

	router := gin.New()
	router.POST("/", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "rate limit check failed", w.Header().Get("X-RateLimit-Error"))
	}
}
