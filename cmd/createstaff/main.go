package main

import (
	"context"
	"flag"
	"os"

	"go.uber.org/zap"

	"github.com/pageza/delight/backend/config"
	"github.com/pageza/delight/backend/internal/database"
	"github.com/pageza/delight/backend/internal/logger"
	"github.com/pageza/delight/backend/internal/service"
)

// createstaff adds a staff account that can sign in to the API and the
// admin site. The password is read from STAFF_PASSWORD so it stays out of
// shell history.
func main() {
	username := flag.String("username", "", "Username of the new staff member")
	flag.Parse()

	if err := logger.Init(string(config.GetEnvironment())); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if *username == "" {
		logger.Fatal("-username is required")
	}
	password := os.Getenv("STAFF_PASSWORD")
	if password == "" {
		logger.Fatal("STAFF_PASSWORD environment variable is not set")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	auth := service.NewAuthService(db, cfg.JWTSecret)
	user, err := auth.CreateStaffUser(context.Background(), *username, password)
	if err != nil {
		logger.Fatal("failed to create staff user", zap.Error(err))
	}
	logger.Info("created staff user", zap.String("username", user.Username), zap.String("id", user.ID.String()))
}
