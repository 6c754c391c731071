package database

import (
	"context"
	"fmt"
	"time"

	"github.com/pageza/delight/backend/config"
	"github.com/pageza/delight/backend/internal/logger"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// New opens the PostgreSQL database described by cfg. Driver errors are
// translated to gorm's sentinel errors (gorm.ErrDuplicatedKey and friends).
func New(cfg *config.Config) (*gorm.DB, error) {
	logger.Info("connecting to database",
		zap.String("host", cfg.DBHost),
		zap.String("port", cfg.DBPort),
		zap.String("user", cfg.DBUser),
		zap.String("database", cfg.DBName),
	)

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := HealthCheck(ctx, db); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	logger.Info("connected to database")
	return db, nil
}

// HealthCheck checks if the database is accessible
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
