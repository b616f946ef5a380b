// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -destination=../mock/service_mock.go -package=mock . AuthService,ProfileService,ReviewService

import (
	"context"

	"github.com/mshconnect/campus-hustle/models"
)

// AuthService authenticates profiles and manages session tokens.
type AuthService interface {
	// Login returns the redacted profile owning email when password matches.
	// A legacy plain-text password is rehashed and stored on success.
	Login(ctx context.Context, email, password string) (models.Profile, error)
	CreateToken(ctx context.Context, profile models.Profile) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Verify returns the redacted profile a token was issued for.
	Verify(ctx context.Context, profileID string) (models.Profile, error)
}

// ProfileService is CRUD over profiles with ownership enforcement. Every
// returned profile is redacted.
type ProfileService interface {
	List(ctx context.Context) ([]models.Profile, error)
	Get(ctx context.Context, id string) (models.Profile, error)
	Create(ctx context.Context, request models.SignupRequest) (models.Profile, error)
	Update(ctx context.Context, id, callerID string, patch models.ProfilePatch) (models.Profile, error)
	Delete(ctx context.Context, id, callerID string) error
}

// ReviewService accepts anonymous reviews and folds them into the reviewed
// profile's rating.
type ReviewService interface {
	Submit(ctx context.Context, profileID string, request models.ReviewRequest) (models.Review, error)
	List(ctx context.Context, profileID string) ([]models.Review, error)
}

// ProfileServiceWrapper defines middleware composition for ProfileService.
// Implementations wrap an existing ProfileService to add behavior such as
// validation.
type ProfileServiceWrapper interface {
	Wrap(ProfileService) ProfileService
}

// ReviewServiceWrapper defines middleware composition for ReviewService.
type ReviewServiceWrapper interface {
	Wrap(ReviewService) ReviewService
}
