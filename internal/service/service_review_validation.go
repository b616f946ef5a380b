// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/mshconnect/campus-hustle/internal/validators"
	"github.com/mshconnect/campus-hustle/models"
)

type ReviewValidationService struct {
	inner     ReviewService
	validator validators.Validator
}

func NewReviewValidationService() ReviewServiceWrapper {
	return &ReviewValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *ReviewValidationService) Submit(ctx context.Context, profileID string, request models.ReviewRequest) (models.Review, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Review{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Submit(ctx, profileID, request)
}

func (v *ReviewValidationService) List(ctx context.Context, profileID string) ([]models.Review, error) {
	return v.inner.List(ctx, profileID)
}

func (v *ReviewValidationService) Wrap(inner ReviewService) ReviewService {
	v.inner = inner
	return v
}
