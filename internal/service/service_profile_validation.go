// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/mshconnect/campus-hustle/internal/validators"
	"github.com/mshconnect/campus-hustle/models"
)

// ProfileValidationService validates signup candidates and patches before
// handing them to the wrapped ProfileService.
type ProfileValidationService struct {
	inner     ProfileService
	validator validators.Validator
}

func NewProfileValidationService() ProfileServiceWrapper {
	return &ProfileValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *ProfileValidationService) List(ctx context.Context) ([]models.Profile, error) {
	return v.inner.List(ctx)
}

func (v *ProfileValidationService) Get(ctx context.Context, id string) (models.Profile, error) {
	return v.inner.Get(ctx, id)
}

func (v *ProfileValidationService) Create(ctx context.Context, request models.SignupRequest) (models.Profile, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Create(ctx, request)
}

func (v *ProfileValidationService) Update(ctx context.Context, id, callerID string, patch models.ProfilePatch) (models.Profile, error) {
	// ownership first: a foreign caller learns nothing about the payload
	if callerID == "" || callerID != id {
		return models.Profile{}, ErrForbidden
	}

	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Update(ctx, id, callerID, patch)
}

func (v *ProfileValidationService) Delete(ctx context.Context, id, callerID string) error {
	return v.inner.Delete(ctx, id, callerID)
}

func (v *ProfileValidationService) Wrap(inner ProfileService) ProfileService {
	v.inner = inner
	return v
}
