// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP server and shuts it down gracefully on
// SIGINT, SIGTERM or SIGQUIT.
package server
