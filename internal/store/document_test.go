// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/mshconnect/campus-hustle/internal/logger"
	"github.com/mshconnect/campus-hustle/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDocumentStore(t *testing.T) (*documentStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "hustlers.json")
	return NewDocumentStore(path, logger.Nop()), path
}

func testProfile(id, email string) models.Profile {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return models.Profile{
		ID:        id,
		Email:     email,
		Password:  "$2a$10$hash",
		Name:      "Ama Mensah",
		Products:  []models.Product{},
		Rating:    0,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestDocumentStore_LoadMissingFileIsEmpty(t *testing.T) {
	s, _ := newTestDocumentStore(t)

	profiles, err := s.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestDocumentStore_CreateGetRoundTripKeepsPassword(t *testing.T) {
	s, path := newTestDocumentStore(t)
	ctx := context.Background()

	_, err := s.Create(ctx, testProfile("p1", "ama@uni.edu"))
	require.NoError(t, err)

	got, err := s.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$hash", got.Password)
	assert.Equal(t, "ama@uni.edu", got.Email)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Contains(t, doc, "profiles")
	assert.Contains(t, doc, "reviews")
	assert.Contains(t, string(raw), `"password": "$2a$10$hash"`)
}

func TestDocumentStore_CreateDuplicateEmailIgnoresCase(t *testing.T) {
	s, _ := newTestDocumentStore(t)
	ctx := context.Background()

	_, err := s.Create(ctx, testProfile("p1", "ama@uni.edu"))
	require.NoError(t, err)

	_, err = s.Create(ctx, testProfile("p2", "AMA@Uni.edu"))
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	profiles, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, profiles, 1)
}

func TestDocumentStore_FindByEmail(t *testing.T) {
	s, _ := newTestDocumentStore(t)
	ctx := context.Background()

	_, err := s.Create(ctx, testProfile("p1", "ama@uni.edu"))
	require.NoError(t, err)

	got, err := s.FindByEmail(ctx, "Ama@UNI.edu")
	require.NoError(t, err)
	assert.Equal(t, "p1", got.ID)

	_, err = s.FindByEmail(ctx, "nobody@uni.edu")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestDocumentStore_GetUnknown(t *testing.T) {
	s, _ := newTestDocumentStore(t)

	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestDocumentStore_Update(t *testing.T) {
	s, _ := newTestDocumentStore(t)
	ctx := context.Background()

	_, err := s.Create(ctx, testProfile("p1", "ama@uni.edu"))
	require.NoError(t, err)
	_, err = s.Create(ctx, testProfile("p2", "kofi@uni.edu"))
	require.NoError(t, err)

	t.Run("applies mutation and keeps id", func(t *testing.T) {
		updated, err := s.Update(ctx, "p1", func(p *models.Profile) error {
			p.Bio = "Braids and cornrows"
			p.ID = "hijacked"
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, "p1", updated.ID)

		got, err := s.Get(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, "Braids and cornrows", got.Bio)
	})

	t.Run("mutation error leaves profile untouched", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := s.Update(ctx, "p1", func(p *models.Profile) error {
			p.Bio = "changed"
			return boom
		})
		assert.ErrorIs(t, err, boom)

		got, err := s.Get(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, "Braids and cornrows", got.Bio)
	})

	t.Run("email taken by another profile", func(t *testing.T) {
		_, err := s.Update(ctx, "p1", func(p *models.Profile) error {
			p.Email = "KOFI@uni.edu"
			return nil
		})
		assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	})

	t.Run("unknown profile", func(t *testing.T) {
		_, err := s.Update(ctx, "missing", func(p *models.Profile) error { return nil })
		assert.ErrorIs(t, err, ErrProfileNotFound)
	})
}

func TestDocumentStore_DeleteRemovesProfileAndReviews(t *testing.T) {
	s, _ := newTestDocumentStore(t)
	ctx := context.Background()

	_, err := s.Create(ctx, testProfile("p1", "ama@uni.edu"))
	require.NoError(t, err)
	_, err = s.Create(ctx, testProfile("p2", "kofi@uni.edu"))
	require.NoError(t, err)

	noop := func(p *models.Profile, r *models.Review) error { return nil }
	_, err = s.AddReview(ctx, "p1", models.Review{ID: "r1", Rating: 4}, noop)
	require.NoError(t, err)
	_, err = s.AddReview(ctx, "p2", models.Review{ID: "r2", Rating: 5}, noop)
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "p1"))
	assert.ErrorIs(t, s.Delete(ctx, "p1"), ErrProfileNotFound)

	_, err = s.Get(ctx, "p1")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	doc, err := s.load()
	require.NoError(t, err)
	require.Len(t, doc.Reviews, 1)
	assert.Equal(t, "r2", doc.Reviews[0].ID)
}

func TestDocumentStore_LoadsLegacyArray(t *testing.T) {
	s, path := newTestDocumentStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	legacy := `[
		{"id": "1712000000000", "email": "ama@uni.edu", "password": "plain-secret",
		 "name": "Ama", "rating": 4.5, "reviewCount": 2, "products": []}
	]`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o600))

	got, err := s.Get(context.Background(), "1712000000000")
	require.NoError(t, err)
	assert.Equal(t, "plain-secret", got.Password)
	assert.Equal(t, 4.5, got.Rating)
	assert.Equal(t, 2, got.ReviewCount)

	// the next write upgrades the file to the document layout
	_, err = s.Update(context.Background(), "1712000000000", func(p *models.Profile) error { return nil })
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"profiles"`)
}

func TestDocumentStore_CorruptDocument(t *testing.T) {
	s, path := newTestDocumentStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`{"profiles": [`), 0o600))

	_, err := s.List(context.Background())
	assert.ErrorIs(t, err, ErrReadingDocument)
}

func TestDocumentStore_SaveLeavesNoTempFiles(t *testing.T) {
	s, path := newTestDocumentStore(t)

	_, err := s.Create(context.Background(), testProfile("p1", "ama@uni.edu"))
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "hustlers.json", entries[0].Name())
}

func TestDocumentStore_ListReviewsNewestFirst(t *testing.T) {
	s, _ := newTestDocumentStore(t)
	ctx := context.Background()

	_, err := s.Create(ctx, testProfile("p1", "ama@uni.edu"))
	require.NoError(t, err)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	noop := func(p *models.Profile, r *models.Review) error { return nil }
	for i := 0; i < 3; i++ {
		_, err := s.AddReview(ctx, "p1", models.Review{ID: fmt.Sprintf("r%d", i), Date: base.Add(time.Duration(i) * time.Hour)}, noop)
		require.NoError(t, err)
	}

	reviews, err := s.ListReviews(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, reviews, 3)
	assert.Equal(t, "r2", reviews[0].ID)
	assert.Equal(t, "r0", reviews[2].ID)
	assert.Equal(t, "p1", reviews[0].ProfileID)

	_, err = s.ListReviews(ctx, "missing")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestDocumentStore_AddReviewApplyError(t *testing.T) {
	s, _ := newTestDocumentStore(t)
	ctx := context.Background()

	_, err := s.Create(ctx, testProfile("p1", "ama@uni.edu"))
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = s.AddReview(ctx, "p1", models.Review{ID: "r1"}, func(p *models.Profile, r *models.Review) error {
		p.ReviewCount = 100
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := s.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 0, got.ReviewCount)

	_, err = s.AddReview(ctx, "missing", models.Review{}, func(p *models.Profile, r *models.Review) error { return nil })
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

// TestDocumentStore_ConcurrentReviewsAreNotLost runs many read-modify-write
// cycles in parallel; every one of them must be reflected in the result.
func TestDocumentStore_ConcurrentReviewsAreNotLost(t *testing.T) {
	s, _ := newTestDocumentStore(t)
	ctx := context.Background()

	_, err := s.Create(ctx, testProfile("p1", "ama@uni.edu"))
	require.NoError(t, err)

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.AddReview(ctx, "p1", models.Review{ID: fmt.Sprintf("r%d", i)}, func(p *models.Profile, r *models.Review) error {
				p.ReviewCount++
				return nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, err := s.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, n, got.ReviewCount)

	reviews, err := s.ListReviews(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, reviews, n)
}
