// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	EnvironmentDevelopment = "development"
	EnvironmentTest        = "test"
	EnvironmentProduction  = "production"
)

// Defaults applied to every field left unset by all sources.
const (
	defaultEnvironment      = EnvironmentProduction
	defaultTokenIssuer      = "campus-hustle"
	defaultTokenDuration    = 7 * 24 * time.Hour
	defaultPasswordHashCost = 10
	defaultLogLevel         = "info"
	defaultHTTPAddress      = ":5000"
	defaultRequestTimeout   = 30 * time.Second
	defaultShutdownTimeout  = 10 * time.Second
	defaultMaxBodyBytes     = 50 << 20
	defaultDocumentPath     = "data/hustlers.json"

	// developmentTokenSignKey is only ever used when Environment is
	// development and no key was configured.
	developmentTokenSignKey = "campus-hustle-development-secret"
)

func defaultConfig(environment string) *StructuredConfig {
	cfg := &StructuredConfig{
		App: App{
			Environment:      defaultEnvironment,
			TokenIssuer:      defaultTokenIssuer,
			TokenDuration:    defaultTokenDuration,
			PasswordHashCost: defaultPasswordHashCost,
			LogLevel:         defaultLogLevel,
		},
		Storage: Storage{
			Files: Files{
				DocumentPath: defaultDocumentPath,
			},
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
			AllowedOrigins:  []string{"*"},
			MaxBodyBytes:    defaultMaxBodyBytes,
		},
	}

	if environment == EnvironmentDevelopment {
		cfg.App.TokenSignKey = developmentTokenSignKey
	}

	return cfg
}
