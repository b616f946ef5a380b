// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/mshconnect/campus-hustle/internal/logger"
	"github.com/mshconnect/campus-hustle/internal/utils"
	"github.com/mshconnect/campus-hustle/models"
)

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	if _, err := utils.WriteJSON(w, data, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// readJSON decodes the request body into dst. Decoding failures are
// reported as ErrInvalidJSON, oversized bodies as ErrBodyTooLarge. The
// returned message names JSON fields only, never Go types.
func readJSON(r *http.Request, dst any) error {
	err := utils.ReadJSON(r, dst)
	if err == nil {
		return nil
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, tooLarge.Limit)
	}

	logger.FromRequest(r).Debug().Err(err).Msg("request body rejected")

	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, models.ErrRatingNotInteger):
		return fmt.Errorf("%w: %w", ErrInvalidJSON, models.ErrRatingNotInteger)
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return fmt.Errorf("%w: %s has the wrong type", ErrInvalidJSON, typeErr.Field)
	default:
		return ErrInvalidJSON
	}
}
