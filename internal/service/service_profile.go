// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mshconnect/campus-hustle/internal/config"
	"github.com/mshconnect/campus-hustle/internal/logger"
	"github.com/mshconnect/campus-hustle/internal/store"
	"github.com/mshconnect/campus-hustle/internal/utils"
	"github.com/mshconnect/campus-hustle/models"
)

// DefaultRating is the rating of a profile without reviews.
const DefaultRating = 5.0

type profileService struct {
	profileRepository store.ProfileRepository
	ids               utils.IDGenerator
	passwordHashCost  int
	now               clock

	logger *logger.Logger
}

func NewProfileService(profileRepository store.ProfileRepository, ids utils.IDGenerator, cfg config.App, logger *logger.Logger) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		ids:               ids,
		passwordHashCost:  cfg.PasswordHashCost,
		now:               systemClock,
		logger:            logger,
	}
}

func (p *profileService) List(ctx context.Context) ([]models.Profile, error) {
	profiles, err := p.profileRepository.List(ctx)
	if err != nil {
		return nil, mapStoreError(err, "listing profiles failed")
	}

	return models.RedactAll(profiles), nil
}

func (p *profileService) Get(ctx context.Context, id string) (models.Profile, error) {
	profile, err := p.profileRepository.Get(ctx, id)
	if err != nil {
		return models.Profile{}, mapStoreError(err, "profile lookup failed")
	}

	return profile.Redacted(), nil
}

// Create registers a new profile with a fresh id and a hashed password.
// Emails are stored lower-cased and compared case-insensitively.
func (p *profileService) Create(ctx context.Context, request models.SignupRequest) (models.Profile, error) {
	log := logger.FromContext(ctx)

	email := normalizeEmail(request.Email)
	if email == "" || strings.TrimSpace(request.Password) == "" {
		return models.Profile{}, ErrValidation
	}

	hashed, err := utils.HashPassword(request.Password, p.passwordHashCost)
	if errors.Is(err, utils.ErrPasswordTooLong) {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if err != nil {
		return models.Profile{}, fmt.Errorf("password hashing failed: %w", err)
	}

	now := p.now()
	profile := models.Profile{
		ID:           p.ids.Generate(),
		Email:        email,
		Password:     hashed,
		Name:         request.Name,
		University:   request.University,
		Category:     request.Category,
		Location:     request.Location,
		Bio:          request.Bio,
		ProfileImage: request.ProfileImage,
		WhatsApp:     request.WhatsApp,
		Services:     request.Services,
		Pricing:      request.Pricing,
		Rating:       DefaultRating,
		ReviewCount:  0,
		Products:     p.stampProducts(request.Products, nil, now),
		Featured:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := p.profileRepository.Create(ctx, profile)
	if err != nil {
		return models.Profile{}, mapStoreError(err, "profile creation failed")
	}

	log.Info().Str("profile_id", created.ID).Msg("profile created")
	return created.Redacted(), nil
}

// Update applies patch to the caller's own profile. Ownership is checked
// before anything is read, so a foreign profile is never touched.
func (p *profileService) Update(ctx context.Context, id, callerID string, patch models.ProfilePatch) (models.Profile, error) {
	if callerID == "" || callerID != id {
		return models.Profile{}, ErrForbidden
	}

	var email string
	if patch.Email != nil {
		email = normalizeEmail(*patch.Email)
		if email == "" {
			return models.Profile{}, ErrValidation
		}
	}

	updated, err := p.profileRepository.Update(ctx, id, func(profile *models.Profile) error {
		now := p.now()
		if patch.Email != nil {
			profile.Email = email
		}
		applyPatch(profile, patch)
		if patch.Products != nil {
			profile.Products = p.stampProducts(*patch.Products, profile.Products, now)
		}
		profile.UpdatedAt = now
		return nil
	})
	if err != nil {
		return models.Profile{}, mapStoreError(err, "profile update failed")
	}

	logger.FromContext(ctx).Info().Str("profile_id", id).Msg("profile updated")
	return updated.Redacted(), nil
}

// Delete removes the caller's own profile. A missing profile is reported
// as ErrProfileNotFound before ownership is considered.
func (p *profileService) Delete(ctx context.Context, id, callerID string) error {
	if _, err := p.profileRepository.Get(ctx, id); err != nil {
		return mapStoreError(err, "profile lookup failed")
	}

	if callerID == "" || callerID != id {
		return ErrForbidden
	}

	if err := p.profileRepository.Delete(ctx, id); err != nil {
		return mapStoreError(err, "profile deletion failed")
	}

	logger.FromContext(ctx).Info().Str("profile_id", id).Msg("profile deleted")
	return nil
}

// applyPatch copies the display fields present in patch. Email and products
// are handled by the caller; id, password, rating, reviewCount and featured
// cannot be patched at all.
func applyPatch(profile *models.Profile, patch models.ProfilePatch) {
	setIfPresent(&profile.Name, patch.Name)
	setIfPresent(&profile.University, patch.University)
	setIfPresent(&profile.Category, patch.Category)
	setIfPresent(&profile.Location, patch.Location)
	setIfPresent(&profile.Bio, patch.Bio)
	setIfPresent(&profile.ProfileImage, patch.ProfileImage)
	setIfPresent(&profile.WhatsApp, patch.WhatsApp)
	setIfPresent(&profile.Pricing, patch.Pricing)
	if patch.Services != nil {
		profile.Services = *patch.Services
	}
}

func setIfPresent[T any](dst *T, value *T) {
	if value != nil {
		*dst = *value
	}
}

// stampProducts assigns ids and timestamps to submitted products. A product
// without an id is new; a product whose id is known keeps its original
// creation date.
func (p *profileService) stampProducts(submitted, existing []models.Product, now time.Time) []models.Product {
	created := make(map[string]time.Time, len(existing))
	for _, product := range existing {
		created[product.ID] = product.CreatedDate
	}

	products := make([]models.Product, 0, len(submitted))
	for _, product := range submitted {
		if product.ID == "" {
			product.ID = p.ids.Generate()
			product.CreatedDate = now
		} else if createdDate, ok := created[product.ID]; ok && !createdDate.IsZero() {
			product.CreatedDate = createdDate
		} else if product.CreatedDate.IsZero() {
			product.CreatedDate = now
		}
		product.UpdatedDate = now
		products = append(products, product)
	}

	return products
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
