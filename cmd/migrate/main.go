package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/pageza/delight/backend/config"
	"github.com/pageza/delight/backend/internal/database"
	"github.com/pageza/delight/backend/internal/logger"
)

func main() {
	rollback := flag.Bool("rollback", false, "Rollback the last applied migration")
	dir := flag.String("dir", "migrations", "Directory containing the SQL migrations")
	flag.Parse()

	if err := logger.Init(string(config.GetEnvironment())); err != nil {
		panic(err)
	}
	defer logger.Sync()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Fatal("DATABASE_URL environment variable is not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	migrations, err := database.LoadMigrations(*dir)
	if err != nil {
		logger.Fatal("failed to load migrations", zap.Error(err))
	}

	if _, err := db.Exec(database.SchemaMigrationsDDL); err != nil {
		logger.Fatal("failed to create schema_migrations table", zap.Error(err))
	}

	if *rollback {
		err = rollbackLast(db, migrations)
	} else {
		err = applyPending(db, migrations)
	}
	if err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}
}

func applyPending(db *sql.DB, migrations []database.Migration) error {
	applied := 0
	for _, m := range migrations {
		var exists bool
		if err := db.QueryRow("SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)", m.Version).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}
		if exists {
			continue
		}

		content, err := m.UpSQL()
		if err != nil {
			return err
		}
		err = inTx(db, func(tx *sql.Tx) error {
			if _, err := tx.Exec(content); err != nil {
				return fmt.Errorf("failed to execute migration %s: %w", m.Name, err)
			}
			if _, err := tx.Exec("INSERT INTO schema_migrations (version, name) VALUES ($1, $2)", m.Version, m.Name); err != nil {
				return fmt.Errorf("failed to record migration %s: %w", m.Name, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
		logger.Info("applied migration", zap.String("migration", m.Name))
		applied++
	}

	logger.Info("migrations up to date", zap.Int("applied", applied))
	return nil
}

func rollbackLast(db *sql.DB, migrations []database.Migration) error {
	var version, name string
	err := db.QueryRow("SELECT version, name FROM schema_migrations ORDER BY version DESC LIMIT 1").Scan(&version, &name)
	if errors.Is(err, sql.ErrNoRows) {
		logger.Info("no migrations to rollback")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get last migration: %w", err)
	}

	var target *database.Migration
	for i := range migrations {
		if migrations[i].Version == version {
			target = &migrations[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("migration %s (%s) is applied but missing from the migrations directory", version, name)
	}

	content, err := target.DownSQL()
	if err != nil {
		return err
	}
	err = inTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(content); err != nil {
			return fmt.Errorf("failed to execute rollback of %s: %w", target.Name, err)
		}
		if _, err := tx.Exec("DELETE FROM schema_migrations WHERE version = $1", version); err != nil {
			return fmt.Errorf("failed to remove migration record: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	logger.Info("rolled back migration", zap.String("migration", target.Name))
	return nil
}

func inTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
