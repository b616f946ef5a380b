// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/mshconnect/campus-hustle/models"
)

// ProfileMutator changes a profile inside the store's write critical
// section. Returning an error aborts the write and leaves the stored profile
// untouched.
type ProfileMutator func(profile *models.Profile) error

// ReviewApplier folds an accepted review into the reviewed profile inside
// the store's write critical section. It may fill fields of the review.
type ReviewApplier func(profile *models.Profile, review *models.Review) error

// ProfileRepository persists profiles, passwords included. Implementations
// must be safe for concurrent use and must never lose a write made through
// Update when two updates of the same profile race.
type ProfileRepository interface {
	// List returns every profile in insertion order.
	List(ctx context.Context) ([]models.Profile, error)

	// Get returns the profile with the given id or [ErrProfileNotFound].
	Get(ctx context.Context, id string) (models.Profile, error)

	// FindByEmail matches email case-insensitively. It returns
	// [ErrProfileNotFound] when no profile uses the email.
	FindByEmail(ctx context.Context, email string) (models.Profile, error)

	// Create stores a new profile. It fails with [ErrEmailAlreadyExists]
	// when the email is taken.
	Create(ctx context.Context, profile models.Profile) (models.Profile, error)

	// Update loads the profile, applies mutate and stores the result
	// atomically. A changed email is re-checked for uniqueness.
	Update(ctx context.Context, id string, mutate ProfileMutator) (models.Profile, error)

	// Delete removes the profile and its reviews.
	Delete(ctx context.Context, id string) error
}

// ReviewRepository persists accepted reviews together with the rating
// change they cause on the reviewed profile.
type ReviewRepository interface {
	// AddReview atomically applies the review to the profile and stores both.
	AddReview(ctx context.Context, profileID string, review models.Review, apply ReviewApplier) (models.Review, error)

	// ListReviews returns the profile's reviews, newest first.
	ListReviews(ctx context.Context, profileID string) ([]models.Review, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// another attempt.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
