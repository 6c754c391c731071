package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerPort         string
	ServerHost         string
	CORSAllowedOrigins []string

	// Database configuration
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	MigrationsDir string

	// Redis configuration, optional. Without it writes are not rate limited.
	RedisURL       string
	RedisHost      string
	RedisPort      string
	RedisPassword  string
	RedisDB        int
	WriteRateLimit int

	// JWT configuration
	JWTSecret string
}

// LoadConfig builds a Config for the current environment. CI and test read
// environment variables; development and production read Docker secrets from
// SECRETS_DIR and fall back to environment variables. A .env file in the
// working directory is loaded first when present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	env := GetEnvironment()
	var lookup func(string) string
	switch env {
	case CI, Test:
		lookup = envValue
	case Development, Production:
		lookup = secretOrEnvValue
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	cfg, err := load(env, lookup)
	if err != nil {
		return nil, err
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func load(env Environment, lookup func(string) string) (*Config, error) {
	get := func(name, def string) string {
		if v := lookup(name); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		Environment:   env,
		ServerHost:    get("server_host", "0.0.0.0"),
		ServerPort:    get("server_port", "8080"),
		DBHost:        get("db_host", "localhost"),
		DBPort:        get("db_port", "5432"),
		DBUser:        get("db_user", ""),
		DBPassword:    get("db_password", ""),
		DBName:        get("db_name", "delight"),
		DBSSLMode:     get("db_ssl_mode", "disable"),
		MigrationsDir: get("migrations_dir", "migrations"),
		RedisURL:      get("redis_url", ""),
		RedisHost:     get("redis_host", ""),
		RedisPort:     get("redis_port", "6379"),
		RedisPassword: get("redis_password", ""),
		JWTSecret:     get("jwt_secret", ""),
	}

	for _, origin := range strings.Split(get("cors_allowed_origins", "http://localhost:5173"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	var err error
	if cfg.RedisDB, err = strconv.Atoi(get("redis_db", "0")); err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	if cfg.WriteRateLimit, err = strconv.Atoi(get("write_rate_limit", "60")); err != nil {
		return nil, fmt.Errorf("invalid WRITE_RATE_LIMIT: %w", err)
	}
	return cfg, nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return net.JoinHostPort(c.ServerHost, c.ServerPort)
}

// DSN returns the PostgreSQL connection string, usable by both gorm and lib/pq
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// RedisEnabled reports whether a Redis server is configured
func (c *Config) RedisEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

func envValue(name string) string {
	return strings.TrimSpace(os.Getenv(strings.ToUpper(name)))
}

func secretOrEnvValue(name string) string {
	if v := readSecret(name); v != "" {
		return v
	}
	return envValue(name)
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	data, err := os.ReadFile(filepath.Join(secretsDir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
