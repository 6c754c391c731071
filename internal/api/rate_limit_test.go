package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/delight/backend/internal/middleware"
	"github.com/pageza/delight/backend/internal/testhelpers"
)

func TestWriteRateLimitStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testhelpers.SetupSQLiteDatabase(t)
	redisClient := testhelpers.SetupRedis(t)
	svc := NewServices(db, testJWTSecret)

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	RegisterRoutes(router, db, svc, middleware.NewWriteRateLimiter(redisClient, 5))

	ctx := context.Background()
	_, err := svc.Auth.CreateStaffUser(ctx, "manager", "correct-horse")
	require.NoError(t, err)
	token, _, err := svc.Auth.Login(ctx, "manager", "correct-horse")
	require.NoError(t, err)
	a := &testAPI{t: t, db: db, router: router, token: token}

	assert.Equal(t, http.StatusUnauthorized, a.request(http.MethodGet, "/api/v1/rate-limits/writes", nil, false).Code)

	a.create("/api/v1/menu-items", map[string]interface{}{"name": "Bread", "price": "4.00"})

	w := a.do(http.MethodGet, "/api/v1/rate-limits/writes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	status := decode[struct {
		Limit     int   `json:"limit"`
		Remaining int   `json:"remaining"`
		ResetTime int64 `json:"reset_time"`
	}](t, w)
	assert.Equal(t, 5, status.Limit)
	assert.Equal(t, 4, status.Remaining)
	assert.NotZero(t, status.ResetTime)
}
