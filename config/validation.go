package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in a Config
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	lines := make([]string, len(e))
	for i, err := range e {
		lines[i] = err.Error()
	}
	return "configuration validation failed:\n" + strings.Join(lines, "\n")
}

// ValidateConfig checks that every required value is set
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors

	required := []struct {
		field string
		value string
	}{
		{"DB_HOST", cfg.DBHost},
		{"DB_PORT", cfg.DBPort},
		{"DB_USER", cfg.DBUser},
		{"DB_PASSWORD", cfg.DBPassword},
		{"DB_NAME", cfg.DBName},
		{"SERVER_PORT", cfg.ServerPort},
		{"JWT_SECRET", cfg.JWTSecret},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, ValidationError{Field: r.field, Message: "is required"})
		}
	}

	if cfg.Environment == Production && len(cfg.JWTSecret) > 0 && len(cfg.JWTSecret) < 32 {
		errs = append(errs, ValidationError{Field: "JWT_SECRET", Message: "must be at least 32 characters in production"})
	}
	if cfg.WriteRateLimit < 0 {
		errs = append(errs, ValidationError{Field: "WRITE_RATE_LIMIT", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
