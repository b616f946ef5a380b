// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// Init builds the router. Every API route is served both at the root and
// under /api, where the web client expects it.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(h.withCORS())
	router.Use(middleware.Compress(5))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	router.Use(h.withBodyLimit)

	router.Get("/health", h.health)

	h.apiRoutes(router)
	router.Route("/api", h.apiRoutes)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, r, errRouteNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, r, errMethodNotAllowed)
	})

	return router
}

func (h *Handler) apiRoutes(r chi.Router) {
	r.Route("/profiles", func(r chi.Router) {
		r.Get("/", h.listProfiles)
		r.Post("/", h.createProfile)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getProfile)

			// routes with authorization
			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Put("/", h.updateProfile)
				r.Delete("/", h.deleteProfile)
			})

			r.Get("/reviews", h.listReviews)
			r.Post("/reviews", h.submitReview)
		})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.login)
		r.Post("/logout", h.logout)
		r.With(h.auth).Get("/verify", h.verify)
	})
}

func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   h.cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: false,
	}).Handler
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, map[string]string{"status": "ok"}, http.StatusOK)
}
