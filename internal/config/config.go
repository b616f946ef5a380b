// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging environment variables, command-line flags, an optional JSON
// file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, password hashing and logging settings.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds HTTP listener and request handling settings.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Environment is "development", "test" or "production". Only
	// development may run without an explicit TokenSignKey.
	Environment string `env:"ENVIRONMENT"`

	// TokenSignKey is the HMAC secret used to sign session tokens.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is written to and required in the "iss" claim.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the validity period of issued tokens.
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordHashCost is the bcrypt cost factor.
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// LogLevel is a zerolog level name.
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for the storage backends. When DB.DSN is
// set the SQL backend is used, otherwise the JSON document at
// Files.DocumentPath.
type Storage struct {
	DB DB `envPrefix:"DB_"`

	Files Files `envPrefix:"FILES_"`
}

// DB holds the relational database connection settings. The DSN scheme
// selects the driver: postgres:// or postgresql:// for PostgreSQL, sqlite://
// or file: for SQLite.
type DB struct {
	DSN string `env:"DATABASE_URI"`
}

// Files holds the JSON document store settings.
type Files struct {
	DocumentPath string `env:"DOCUMENT_PATH"`
}

// Server holds HTTP server settings.
type Server struct {
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling time of a single request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// AllowedOrigins lists CORS origins; "*" allows all.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// MaxBodyBytes limits request bodies, which may embed base64 images.
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES"`
}

// GetStructuredConfig loads, merges, defaults and validates the configuration.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

// IsDevelopment reports whether the app runs in the development environment.
func (a App) IsDevelopment() bool {
	return a.Environment == EnvironmentDevelopment
}

// UsesDatabase reports whether the SQL backend is configured.
func (s Storage) UsesDatabase() bool {
	return s.DB.DSN != ""
}
