// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/mshconnect/campus-hustle/internal/config"
	"github.com/mshconnect/campus-hustle/internal/logger"
	"github.com/mshconnect/campus-hustle/internal/store"
	"github.com/mshconnect/campus-hustle/internal/utils"
)

type Services struct {
	AuthService    AuthService
	ProfileService ProfileService
	ReviewService  ReviewService
}

// NewServices wires the services over storages. Profile and review services
// are wrapped with request validation.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	ids := utils.NewUUIDGenerator()

	profileService := NewProfileService(storages.ProfileRepository, ids, cfg, logger)
	reviewService := NewReviewService(storages.ReviewRepository, ids, logger)

	return &Services{
		AuthService:    NewAuthService(storages.ProfileRepository, cfg, logger),
		ProfileService: NewProfileValidationService().Wrap(profileService),
		ReviewService:  NewReviewValidationService().Wrap(reviewService),
	}
}

// clock is the time source of the services; tests replace it.
type clock func() time.Time

func systemClock() time.Time {
	return time.Now().UTC()
}
