// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/mshconnect/campus-hustle/internal/logger"
	"github.com/mshconnect/campus-hustle/internal/service"
	"github.com/mshconnect/campus-hustle/internal/utils"
	"github.com/mshconnect/campus-hustle/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := readJSON(r, &request); err != nil {
		log.Debug().Err(err).Msg("invalid login body")
		h.writeError(w, r, err)
		return
	}

	if strings.TrimSpace(request.Email) == "" || request.Password == "" {
		h.writeError(w, r, service.ErrValidation)
		return
	}

	profile, err := h.services.AuthService.Login(ctx, request.Email, request.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, profile)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("profile_id", profile.ID).Msg("profile successfully logged in")

	w.Header().Set("Authorization", bearerScheme+" "+token.SignedString)
	h.writeJSON(w, r, models.LoginResponse{Profile: profile, Token: token.SignedString}, http.StatusOK)
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profileID, ok := utils.GetProfileIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrUnauthenticated)
		return
	}

	profile, err := h.services.AuthService.Verify(ctx, profileID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, profile, http.StatusOK)
}

// logout only acknowledges: tokens are stateless and stay valid until they
// expire.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, models.MessageResponse{Success: true, Message: "logged out"}, http.StatusOK)
}
