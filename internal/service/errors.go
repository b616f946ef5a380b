// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/mshconnect/campus-hustle/internal/store"
)

var (
	// ErrProfileNotFound is returned when the referenced profile does not
	// exist.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrDuplicateEmail is returned when a profile would share its email
	// with another profile.
	ErrDuplicateEmail = errors.New("email is already registered")

	// ErrForbidden is returned when the caller does not own the profile.
	ErrForbidden = errors.New("profile belongs to another user")

	// ErrInvalidCredentials is returned for an unknown email and for a wrong
	// password alike.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken is returned for a missing, expired, forged or
	// malformed token.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrValidation is returned when a request misses required fields or
	// carries malformed values.
	ErrValidation = errors.New("validation failed")

	// ErrTokenCreationFailed is returned when a session token cannot be
	// signed.
	ErrTokenCreationFailed = errors.New("token creation failed")
)

// mapStoreError translates store sentinels into service sentinels and wraps
// anything else with msg.
func mapStoreError(err error, msg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrProfileNotFound):
		return ErrProfileNotFound
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return ErrDuplicateEmail
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrValidation):
		return err
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}
