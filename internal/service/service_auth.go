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

// authService is the concrete implementation of AuthService.
// It verifies credentials against bcrypt hashes, migrates legacy plain-text
// passwords on first successful login and issues HS256 session tokens.
type authService struct {
	// profileRepository is used to look up profiles by email and to persist
	// migrated password hashes.
	profileRepository store.ProfileRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// passwordHashCost is the bcrypt cost of migrated hashes.
	passwordHashCost int

	now clock

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// ProfileRepository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(profileRepository store.ProfileRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		profileRepository: profileRepository,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		passwordHashCost:  cfg.PasswordHashCost,
		now:               systemClock,
		logger:            logger,
	}
}

// Login authenticates a profile by email and password.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials.
// When the stored password is legacy plain text and matches, it is replaced
// by a bcrypt hash before Login returns; a failure to persist the hash fails
// the login.
func (a *authService) Login(ctx context.Context, email, password string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(email) == "" || password == "" {
		return models.Profile{}, ErrInvalidCredentials
	}

	profile, err := a.profileRepository.FindByEmail(ctx, email)
	if errors.Is(err, store.ErrProfileNotFound) {
		log.Debug().Msg("login attempt for unknown email")
		return models.Profile{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.Profile{}, fmt.Errorf("profile search by email failed: %w", err)
	}

	ok, legacy, err := utils.ComparePassword(password, profile.Password)
	if err != nil {
		return models.Profile{}, fmt.Errorf("password comparison failed: %w", err)
	}
	if !ok {
		log.Debug().Str("profile_id", profile.ID).Msg("wrong password")
		return models.Profile{}, ErrInvalidCredentials
	}

	if legacy {
		// the password matched; a failed rehash is retried on the next login
		migrated, err := a.migratePassword(ctx, profile.ID, password)
		if err != nil {
			log.Warn().Err(err).Str("profile_id", profile.ID).Msg("legacy password left unmigrated")
		} else {
			profile = migrated
			log.Info().Str("profile_id", profile.ID).Msg("legacy password migrated to bcrypt")
		}
	}

	return profile.Redacted(), nil
}

// migratePassword stores a bcrypt hash of plain as the profile's password,
// unless a concurrent login already did.
func (a *authService) migratePassword(ctx context.Context, profileID, plain string) (models.Profile, error) {
	hashed, err := utils.HashPassword(plain, a.passwordHashCost)
	if err != nil {
		return models.Profile{}, fmt.Errorf("password migration failed: %w", err)
	}

	profile, err := a.profileRepository.Update(ctx, profileID, func(p *models.Profile) error {
		if utils.IsPasswordHash(p.Password) {
			return nil
		}
		p.Password = hashed
		p.UpdatedAt = a.now()
		return nil
	})
	if err != nil {
		return models.Profile{}, mapStoreError(err, "password migration failed")
	}

	return profile, nil
}

// CreateToken issues a signed JWT for the given profile.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, profile models.Profile) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, profile.ID, profile.Email, a.tokenDuration, a.tokenSignKey, a.now())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, bad signature, unexpected
// algorithm, malformed) is normalised to ErrInvalidToken so that callers do
// not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.now())
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrInvalidToken
	}

	return token, nil
}

// Verify returns the redacted profile of a token subject, or
// ErrProfileNotFound when it no longer exists.
func (a *authService) Verify(ctx context.Context, profileID string) (models.Profile, error) {
	profile, err := a.profileRepository.Get(ctx, profileID)
	if err != nil {
		return models.Profile{}, mapStoreError(err, "profile lookup failed")
	}

	return profile.Redacted(), nil
}
