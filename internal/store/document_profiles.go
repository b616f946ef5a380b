// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"strings"

	"github.com/mshconnect/campus-hustle/internal/logger"
	"github.com/mshconnect/campus-hustle/models"
)

func (s *documentStore) List(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	err := s.read(func(doc *document) error {
		profiles = make([]models.Profile, 0, len(doc.Profiles))
		for _, record := range doc.Profiles {
			profiles = append(profiles, record.toProfile())
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "documentStore.List").Msg("failed to load profiles")
		return nil, err
	}

	return profiles, nil
}

func (s *documentStore) Get(ctx context.Context, id string) (models.Profile, error) {
	var profile models.Profile
	err := s.read(func(doc *document) error {
		i := doc.indexOf(id)
		if i < 0 {
			return ErrProfileNotFound
		}
		profile = doc.Profiles[i].toProfile()
		return nil
	})

	return profile, err
}

func (s *documentStore) FindByEmail(ctx context.Context, email string) (models.Profile, error) {
	var profile models.Profile
	err := s.read(func(doc *document) error {
		for _, record := range doc.Profiles {
			if equalEmails(record.Email, email) {
				profile = record.toProfile()
				return nil
			}
		}
		return ErrProfileNotFound
	})

	return profile, err
}

func (s *documentStore) Create(ctx context.Context, profile models.Profile) (models.Profile, error) {
	err := s.modify(func(doc *document) error {
		if doc.emailTaken(profile.Email, "") {
			return ErrEmailAlreadyExists
		}
		doc.Profiles = append(doc.Profiles, toRecord(profile))
		return nil
	})
	if err != nil {
		return models.Profile{}, err
	}

	logger.FromContext(ctx).Debug().Str("profile_id", profile.ID).Msg("profile created")
	return profile, nil
}

func (s *documentStore) Update(ctx context.Context, id string, mutate ProfileMutator) (models.Profile, error) {
	var updated models.Profile
	err := s.modify(func(doc *document) error {
		i := doc.indexOf(id)
		if i < 0 {
			return ErrProfileNotFound
		}

		profile := doc.Profiles[i].toProfile()
		if err := mutate(&profile); err != nil {
			return err
		}

		// id is the document key and is never changed by a mutation
		profile.ID = id
		if doc.emailTaken(profile.Email, id) {
			return ErrEmailAlreadyExists
		}

		doc.Profiles[i] = toRecord(profile)
		updated = profile
		return nil
	})
	if err != nil {
		return models.Profile{}, err
	}

	return updated, nil
}

func (s *documentStore) Delete(ctx context.Context, id string) error {
	return s.modify(func(doc *document) error {
		i := doc.indexOf(id)
		if i < 0 {
			return ErrProfileNotFound
		}
		doc.Profiles = append(doc.Profiles[:i], doc.Profiles[i+1:]...)

		reviews := doc.Reviews[:0]
		for _, review := range doc.Reviews {
			if review.ProfileID != id {
				reviews = append(reviews, review)
			}
		}
		doc.Reviews = reviews
		return nil
	})
}

func equalEmails(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
