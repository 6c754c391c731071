package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/delight/backend/internal/database"
	"github.com/pageza/delight/backend/internal/logger"
	"github.com/pageza/delight/backend/internal/middleware"
	"github.com/pageza/delight/backend/internal/service"
)

// Services are the dependencies of the API handlers
type Services struct {
	Ingredients  service.IIngredientService
	MenuItems    service.IMenuItemService
	Requirements service.IRequirementService
	Purchases    service.IPurchaseService
	Auth         service.IAuthService
}

// NewServices builds the gorm-backed services
func NewServices(db *gorm.DB, jwtSecret string) Services {
	return Services{
		Ingredients:  service.NewIngredientService(db),
		MenuItems:    service.NewMenuItemService(db),
		Requirements: service.NewRequirementService(db),
		Purchases:    service.NewPurchaseService(db),
		Auth:         service.NewAuthService(db, jwtSecret),
	}
}

// HealthCheck reports whether the API and its database are reachable
func HealthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := database.HealthCheck(ctx, db); err != nil {
			logger.Warn("health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "unreachable",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Delight API is running",
		})
	}
}

// RegisterRoutes registers all API routes. Writes need a staff token and,
// when limiter is not nil, count against the write rate limit.
func RegisterRoutes(router *gin.Engine, db *gorm.DB, svc Services, limiter *middleware.RateLimiter) {
	router.GET("/health", HealthCheck(db))

	write := []gin.HandlerFunc{middleware.AuthMiddleware(svc.Auth)}
	if limiter != nil {
		write = append(write, limiter.Middleware())
	}

	v1 := router.Group("/api/v1")
	NewAuthHandler(svc.Auth).RegisterRoutes(v1)
	NewIngredientHandler(svc.Ingredients).RegisterRoutes(v1, write...)
	NewMenuItemHandler(svc.MenuItems).RegisterRoutes(v1, write...)
	NewRequirementHandler(svc.Requirements).RegisterRoutes(v1, write...)
	NewPurchaseHandler(svc.Purchases).RegisterRoutes(v1, write...)

	if limiter != nil {
		RegisterRateLimitRoutes(v1, svc.Auth, limiter)
	}
}

// RegisterRateLimitRoutes lets staff check how many writes they have left
func RegisterRateLimitRoutes(router *gin.RouterGroup, auth service.IAuthService, limiter *middleware.RateLimiter) {
	rateLimits := router.Group("/rate-limits")
	rateLimits.Use(middleware.AuthMiddleware(auth))
	{
		rateLimits.GET("/writes", func(c *gin.Context) {
			staffID := fmt.Sprintf("%v", c.MustGet(middleware.StaffIDKey))
			remaining, resetTime, err := limiter.GetRemainingRequests(c.Request.Context(), staffID)
			if err != nil {
				_ = c.Error(err)
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"limit":      limiter.Limit(),
				"remaining":  remaining,
				"reset_time": resetTime.Unix(),
			})
		})
	}
}
