// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"math"
	"strings"

	"github.com/mshconnect/campus-hustle/internal/logger"
	"github.com/mshconnect/campus-hustle/internal/store"
	"github.com/mshconnect/campus-hustle/internal/utils"
	"github.com/mshconnect/campus-hustle/models"
)

const (
	minReviewRating = 1
	maxReviewRating = 5
)

type reviewService struct {
	reviewRepository store.ReviewRepository
	ids              utils.IDGenerator
	now              clock

	logger *logger.Logger
}

func NewReviewService(reviewRepository store.ReviewRepository, ids utils.IDGenerator, logger *logger.Logger) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		ids:              ids,
		now:              systemClock,
		logger:           logger,
	}
}

// AggregateRating folds one review into a running average.
//
// A profile without reviews counts as rated DefaultRating, so the first
// review is averaged against a zero-weight baseline and becomes the rating.
// The result is rounded to one decimal place.
func AggregateRating(currentRating float64, currentCount int, reviewRating int) (float64, int) {
	prior := currentRating
	if currentCount <= 0 {
		prior = DefaultRating
		currentCount = 0
	}

	priorTotal := prior * float64(currentCount)
	newCount := currentCount + 1
	newRating := math.Round((priorTotal+float64(reviewRating))/float64(newCount)*10) / 10

	return newRating, newCount
}

// Submit accepts a review and updates the profile's rating and review count
// inside the store's critical section, so concurrent reviews of the same
// profile are never lost.
func (s *reviewService) Submit(ctx context.Context, profileID string, request models.ReviewRequest) (models.Review, error) {
	rating := int(request.Rating)
	name := strings.TrimSpace(request.Name)
	comment := strings.TrimSpace(request.Comment)
	if name == "" || comment == "" || rating < minReviewRating || rating > maxReviewRating {
		return models.Review{}, ErrValidation
	}

	review := models.Review{
		ID:        s.ids.Generate(),
		ProfileID: profileID,
		Name:      name,
		Rating:    rating,
		Comment:   comment,
	}

	accepted, err := s.reviewRepository.AddReview(ctx, profileID, review, func(profile *models.Profile, review *models.Review) error {
		now := s.now()
		profile.Rating, profile.ReviewCount = AggregateRating(profile.Rating, profile.ReviewCount, review.Rating)
		profile.UpdatedAt = now

		review.Hustler = profile.Name
		review.University = profile.University
		review.Date = now
		return nil
	})
	if err != nil {
		return models.Review{}, mapStoreError(err, "review submission failed")
	}

	logger.FromContext(ctx).Info().
		Str("profile_id", profileID).
		Int("rating", rating).
		Msg("review accepted")
	return accepted, nil
}

func (s *reviewService) List(ctx context.Context, profileID string) ([]models.Review, error) {
	reviews, err := s.reviewRepository.ListReviews(ctx, profileID)
	if err != nil {
		return nil, mapStoreError(err, "listing reviews failed")
	}

	return reviews, nil
}
