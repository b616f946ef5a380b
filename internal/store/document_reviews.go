// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sort"

	"github.com/mshconnect/campus-hustle/models"
)

func (s *documentStore) AddReview(ctx context.Context, profileID string, review models.Review, apply ReviewApplier) (models.Review, error) {
	err := s.modify(func(doc *document) error {
		i := doc.indexOf(profileID)
		if i < 0 {
			return ErrProfileNotFound
		}

		profile := doc.Profiles[i].toProfile()
		review.ProfileID = profileID
		if err := apply(&profile, &review); err != nil {
			return err
		}

		doc.Profiles[i] = toRecord(profile)
		doc.Reviews = append(doc.Reviews, review)
		return nil
	})
	if err != nil {
		return models.Review{}, err
	}

	return review, nil
}

func (s *documentStore) ListReviews(ctx context.Context, profileID string) ([]models.Review, error) {
	reviews := make([]models.Review, 0)
	err := s.read(func(doc *document) error {
		if doc.indexOf(profileID) < 0 {
			return ErrProfileNotFound
		}
		for _, review := range doc.Reviews {
			if review.ProfileID == profileID {
				reviews = append(reviews, review)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].Date.After(reviews[j].Date)
	})
	return reviews, nil
}
