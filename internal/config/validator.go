package config

import (
	"fmt"
	"os"
)

// ExpectedEnvSchemaVersion is the .env layout this build understands
const ExpectedEnvSchemaVersion = "1.0"

// MinAPIKeyLength is the shortest API key not flagged as weak
const MinAPIKeyLength = 32

// Values copied from .env.example that must never reach production
const (
	exampleDBPassword = "change_this_secure_password"
	exampleAPIKey     = "generate_with_openssl_rand_hex_32"
	defaultDBPassword = "postgres"
)

// Warnings reports settings that load fine but are unsafe outside development
func (c *Config) Warnings() []string {
	var warnings []string

	if v := os.Getenv("ENV_SCHEMA_VERSION"); v != "" && v != ExpectedEnvSchemaVersion {
		warnings = append(warnings, fmt.Sprintf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, v))
	}

	if c.APIKey == exampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	} else if len(c.APIKey) < MinAPIKeyLength {
		warnings = append(warnings, fmt.Sprintf("API_KEY is shorter than %d characters", MinAPIKeyLength))
	}

	if !c.UseMemoryStore() && (c.DBPassword == exampleDBPassword || c.DBPassword == defaultDBPassword) {
		warnings = append(warnings, "DB_PASSWORD appears to be using a default value - please use a secure password")
	}

	if c.IsProduction() && c.UseMemoryStore() {
		warnings = append(warnings, "STORE_BACKEND=memory in production: characters are lost on restart")
	}

	return warnings
}

// IsProduction reports whether ENVIRONMENT is prod or production
func (c *Config) IsProduction() bool {
	return c.Environment == "prod" || c.Environment == "production"
}
