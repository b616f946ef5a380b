// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST surface of the campus-hustle backend.
//
// It wires the chi router, the middleware chain (panic recovery, trace ids,
// access logging, CORS, compression, body limits, timeouts and bearer
// authentication) and the handlers that translate requests into service
// calls. Service errors are mapped to status codes and a stable JSON error
// body in errors_mapper.go.
package http
