package database

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pageza/delight/backend/internal/logger"
	"github.com/pageza/delight/backend/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SchemaMigrationsDDL creates the table that records applied migrations.
const SchemaMigrationsDDL = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version VARCHAR(32) PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	applied_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

const rollbackSuffix = "_rollback.sql"

// Migration is one forward SQL file plus its optional rollback file.
// Files are named VERSION_description.sql, e.g. 0002_alter_unit_choices.sql.
type Migration struct {
	Version      string
	Name         string
	Path         string
	RollbackPath string
}

// LoadMigrations lists the migrations in dir ordered by file name.
func LoadMigrations(dir string) ([]Migration, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	names := make(map[string]bool, len(entries))
	for _, e := range entries {
		names[e.Name()] = true
	}

	var migrations []Migration
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ".sql" || strings.HasSuffix(name, rollbackSuffix) {
			continue
		}
		version, _, ok := strings.Cut(name, "_")
		if !ok {
			return nil, fmt.Errorf("migration %s is not named VERSION_description.sql", name)
		}
		m := Migration{
			Version: version,
			Name:    name,
			Path:    filepath.Join(dir, name),
		}
		if rollback := strings.TrimSuffix(name, ".sql") + rollbackSuffix; names[rollback] {
			m.RollbackPath = filepath.Join(dir, rollback)
		}
		migrations = append(migrations, m)
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Name < migrations[j].Name
	})
	for i := 1; i < len(migrations); i++ {
		if migrations[i].Version == migrations[i-1].Version {
			return nil, fmt.Errorf("duplicate migration version %s", migrations[i].Version)
		}
	}
	return migrations, nil
}

// UpSQL returns the forward statements.
func (m Migration) UpSQL() (string, error) {
	content, err := os.ReadFile(m.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read migration file %s: %w", m.Name, err)
	}
	return string(content), nil
}

// DownSQL returns the rollback statements.
func (m Migration) DownSQL() (string, error) {
	if m.RollbackPath == "" {
		return "", fmt.Errorf("migration %s has no rollback file", m.Name)
	}
	content, err := os.ReadFile(m.RollbackPath)
	if err != nil {
		return "", fmt.Errorf("failed to read rollback file for %s: %w", m.Name, err)
	}
	return string(content), nil
}

// RunMigrations brings the schema up to date. SQLite databases (tests) are
// built with GORM auto-migration; PostgreSQL runs every SQL file in
// migrationsDir that is not yet recorded in schema_migrations, each in its
// own transaction.
func RunMigrations(db *gorm.DB, migrationsDir string) error {
	if db.Dialector.Name() == "sqlite" {
		logger.Info("using GORM auto-migration for SQLite")
		return db.AutoMigrate(models.All()...)
	}

	migrations, err := LoadMigrations(migrationsDir)
	if err != nil {
		return err
	}

	if err := db.Exec(SchemaMigrationsDDL).Error; err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var count int64
		if err := db.Table("schema_migrations").Where("version = ?", m.Version).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}
		if count > 0 {
			logger.Info("skipping migration, already applied", zap.String("migration", m.Name))
			continue
		}

		content, err := m.UpSQL()
		if err != nil {
			return err
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec(content).Error; err != nil {
				return fmt.Errorf("failed to execute migration %s: %w", m.Name, err)
			}
			if err := tx.Exec("INSERT INTO schema_migrations (version, name) VALUES (?, ?)", m.Version, m.Name).Error; err != nil {
				return fmt.Errorf("failed to record migration %s: %w", m.Name, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
		logger.Info("applied migration", zap.String("migration", m.Name))
	}
	return nil
}
