package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pageza/delight/backend/config"
	"github.com/pageza/delight/backend/internal/database"
	"github.com/pageza/delight/backend/internal/logger"
	"github.com/pageza/delight/backend/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		// logger is not configured yet
		_ = logger.Init("development")
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	if err := logger.Init(string(cfg.Environment)); err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	var redisClient *redis.Client
	if cfg.RedisEnabled() {
		redisClient, err = database.NewRedisClient(cfg)
		if err != nil {
			// Continue without rate limiting if Redis is not available
			logger.Warn("redis unavailable, writes will not be rate limited", zap.Error(err))
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	srv := server.New(cfg, db, redisClient)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("received signal", zap.String("signal", sig.String()))
	}

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}
