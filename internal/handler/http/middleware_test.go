// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mshconnect/campus-hustle/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID(t *testing.T) {
	h, _ := newTestHandler(t)

	t.Run("reuses incoming id", func(t *testing.T) {
		rec := serve(h, http.MethodGet, "/health", "", traceIDHeader, "trace-123")
		assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
	})

	t.Run("issues new id", func(t *testing.T) {
		first := serve(h, http.MethodGet, "/health", "").Header().Get(traceIDHeader)
		second := serve(h, http.MethodGet, "/health", "").Header().Get(traceIDHeader)

		assert.NotEmpty(t, first)
		assert.NotEqual(t, first, second)
	})

	t.Run("attaches logger to context", func(t *testing.T) {
		var got *logger.Logger
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = logger.FromRequest(r)
		})

		h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		require.NotNil(t, got)
	})
}

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)
	n, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	_, _ = w.Write([]byte(" world"))

	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 11, w.size)
	assert.Equal(t, rec, w.Unwrap())
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	_, _ = w.Write([]byte("x"))

	assert.Equal(t, http.StatusOK, w.status)
}

func TestWithCORS(t *testing.T) {
	// browsers send request headers lowercased, sorted and comma-joined
	tests := []struct {
		name    string
		path    string
		method  string
		headers string
	}{
		{name: "signup", path: "/api/profiles", method: http.MethodPost, headers: "content-type"},
		{name: "authenticated update", path: "/api/profiles/p1", method: http.MethodPut, headers: "authorization,content-type"},
		{name: "authenticated delete", path: "/api/profiles/p1", method: http.MethodDelete, headers: "authorization"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rec := serve(h, http.MethodOptions, tt.path, "",
				"Origin", "https://mshconnect.example",
				"Access-Control-Request-Method", tt.method,
				"Access-Control-Request-Headers", tt.headers,
			)

			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), tt.method)
			assert.Equal(t, tt.headers, rec.Header().Get("Access-Control-Allow-Headers"))
		})
	}
}

func TestWithCORS_RestrictedOrigins(t *testing.T) {
	h, _ := newTestHandler(t)
	h.cfg.AllowedOrigins = []string{"https://mshconnect.example"}

	allowed := serve(h, http.MethodGet, "/health", "", "Origin", "https://mshconnect.example")
	denied := serve(h, http.MethodGet, "/health", "", "Origin", "https://evil.example")

	assert.Equal(t, "https://mshconnect.example", allowed.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, denied.Header().Get("Access-Control-Allow-Origin"))
}

func TestWithCompression(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodGet, "/health", "", "Accept-Encoding", "gzip")

	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
}
