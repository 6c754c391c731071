package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/delight/backend/config"
	"github.com/pageza/delight/backend/internal/logger"
	"github.com/pageza/delight/backend/internal/router"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New creates a new server instance. redisClient may be nil.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	r := router.Setup(cfg, db, redisClient)
	return &Server{
		router: r,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	logger.Info("starting server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
