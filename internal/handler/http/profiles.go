// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mshconnect/campus-hustle/internal/logger"
	"github.com/mshconnect/campus-hustle/internal/utils"
	"github.com/mshconnect/campus-hustle/models"
)

func (h *Handler) listProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.services.ProfileService.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, profiles, http.StatusOK)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.services.ProfileService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, profile, http.StatusOK)
}

// createProfile is the signup endpoint. Server-maintained fields in the body
// (id, rating, reviewCount, featured) are ignored.
func (h *Handler) createProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.SignupRequest
	if err := readJSON(r, &request); err != nil {
		log.Debug().Err(err).Msg("invalid signup body")
		h.writeError(w, r, err)
		return
	}

	profile, err := h.services.ProfileService.Create(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, profile, http.StatusCreated)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := utils.GetProfileIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrUnauthenticated)
		return
	}

	var patch models.ProfilePatch
	if err := readJSON(r, &patch); err != nil {
		log.Debug().Err(err).Msg("invalid profile patch body")
		h.writeError(w, r, err)
		return
	}

	profile, err := h.services.ProfileService.Update(ctx, chi.URLParam(r, "id"), callerID, patch)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, profile, http.StatusOK)
}

func (h *Handler) deleteProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	callerID, ok := utils.GetProfileIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrUnauthenticated)
		return
	}

	if err := h.services.ProfileService.Delete(ctx, chi.URLParam(r, "id"), callerID); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.MessageResponse{Success: true}, http.StatusOK)
}
