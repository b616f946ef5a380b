// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/mshconnect/campus-hustle/internal/logger"
	"github.com/mshconnect/campus-hustle/internal/service"
	"github.com/mshconnect/campus-hustle/models"
)

// Error codes of the JSON error body.
const (
	CodeNotFound           = "NOT_FOUND"
	CodeDuplicateEmail     = "DUPLICATE_EMAIL"
	CodeForbidden          = "FORBIDDEN"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeValidationError    = "VALIDATION_ERROR"
	CodeInternalError      = "INTERNAL_ERROR"
)

type apiError struct {
	status int
	code   string
}

var errorStatusMap = map[error]apiError{
	service.ErrProfileNotFound:    {http.StatusNotFound, CodeNotFound},
	service.ErrDuplicateEmail:     {http.StatusBadRequest, CodeDuplicateEmail},
	service.ErrForbidden:          {http.StatusForbidden, CodeForbidden},
	service.ErrInvalidCredentials: {http.StatusUnauthorized, CodeInvalidCredentials},
	service.ErrInvalidToken:       {http.StatusUnauthorized, CodeInvalidToken},
	service.ErrValidation:         {http.StatusBadRequest, CodeValidationError},

	ErrEmptyAuthorizationHeader:   {http.StatusUnauthorized, CodeInvalidToken},
	ErrInvalidAuthorizationHeader: {http.StatusUnauthorized, CodeInvalidToken},
	ErrEmptyToken:                 {http.StatusUnauthorized, CodeInvalidToken},
	ErrUnauthenticated:            {http.StatusUnauthorized, CodeInvalidToken},
	ErrInvalidJSON:                {http.StatusBadRequest, CodeValidationError},
	ErrBodyTooLarge:               {http.StatusRequestEntityTooLarge, CodeValidationError},

	errRouteNotFound:    {http.StatusNotFound, CodeNotFound},
	errMethodNotAllowed: {http.StatusMethodNotAllowed, CodeNotFound},
}

var internalError = apiError{http.StatusInternalServerError, CodeInternalError}

func apiErrorFrom(err error) apiError {
	for target, apiErr := range errorStatusMap {
		if errors.Is(err, target) {
			return apiErr
		}
	}
	return internalError
}

func statusFromError(err error) int {
	return apiErrorFrom(err).status
}

// writeError answers with the status and code mapped from err. Unmapped
// errors are logged and reported as a generic 500 without details.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := apiErrorFrom(err)

	message := err.Error()
	if apiErr == internalError {
		logger.FromRequest(r).Err(err).Msg("unexpected error occurred")
		message = http.StatusText(http.StatusInternalServerError)
	}

	h.writeJSON(w, r, models.ErrorResponse{
		Error: models.ErrorBody{Code: apiErr.code, Message: message},
	}, apiErr.status)
}
