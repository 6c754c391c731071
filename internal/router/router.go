package router

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pageza/delight/backend/config"
	"github.com/pageza/delight/backend/internal/admin"
	"github.com/pageza/delight/backend/internal/api"
	"github.com/pageza/delight/backend/internal/middleware"
)

// Setup builds the application engine. redisClient may be nil, in which case
// writes are not rate limited.
func Setup(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *gin.Engine {
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	router.Use(middleware.RequestLogger())
	router.Use(middleware.ErrorHandler())

	services := api.NewServices(db, cfg.JWTSecret)

	var limiter *middleware.RateLimiter
	if redisClient != nil && cfg.WriteRateLimit > 0 {
		limiter = middleware.NewWriteRateLimiter(redisClient, cfg.WriteRateLimit)
	}
	api.RegisterRoutes(router, db, services, limiter)

	// Admin site, staff only
	adminGroup := router.Group("/admin")
	adminGroup.Use(middleware.AuthMiddleware(services.Auth))
	admin.NewHandler(admin.NewInventorySite(db)).RegisterRoutes(adminGroup)

	return router
}
