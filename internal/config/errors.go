// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrInvalidStorageConfigs is returned when no storage backend can be
	// derived from the configuration.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidAppConfigs is returned for out-of-range token or hashing
	// settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidServerConfigs is returned for unusable server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrMissingTokenSignKey is returned when no signing secret is configured
	// outside the development environment.
	ErrMissingTokenSignKey = errors.New("token sign key must be configured outside development")
)
