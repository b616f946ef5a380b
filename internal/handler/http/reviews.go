// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mshconnect/campus-hustle/internal/logger"
	"github.com/mshconnect/campus-hustle/models"
)

// submitReview accepts an anonymous review. The rating may be a JSON number
// or a numeric string.
func (h *Handler) submitReview(w http.ResponseWriter, r *http.Request) {
	var request models.ReviewRequest
	if err := readJSON(r, &request); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid review body")
		h.writeError(w, r, err)
		return
	}

	review, err := h.services.ReviewService.Submit(r.Context(), chi.URLParam(r, "id"), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, review, http.StatusCreated)
}

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.services.ReviewService.List(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, reviews, http.StatusOK)
}
