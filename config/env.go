package config

import (
	"os"
	"strings"
)

// Environment is the runtime environment the service is deployed in
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment reads ENV. CI=true wins over ENV; anything unrecognised is
// treated as development.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}

	switch env := Environment(strings.ToLower(strings.TrimSpace(os.Getenv("ENV")))); env {
	case Production, Test, Development:
		return env
	default:
		return Development
	}
}
