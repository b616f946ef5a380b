// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/mshconnect/campus-hustle/internal/logger"
	"github.com/mshconnect/campus-hustle/internal/mock"
	"github.com/mshconnect/campus-hustle/internal/store"
	"github.com/mshconnect/campus-hustle/internal/utils"
	"github.com/mshconnect/campus-hustle/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// sequenceIDs hands out id-1, id-2, ...
type sequenceIDs struct {
	n int
}

func (s *sequenceIDs) Generate() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

func newTestProfileSvc(t *testing.T, ctrl *gomock.Controller) (*profileService, *mock.MockProfileRepository) {
	t.Helper()
	repo := mock.NewMockProfileRepository(ctrl)

	svc := NewProfileService(repo, &sequenceIDs{}, testAppConfig(), logger.Nop()).(*profileService)
	svc.now = func() time.Time { return testNow }

	return svc, repo
}

func ptr[T any](v T) *T {
	return &v
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestProfileService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestProfileSvc(t, ctrl)

	var stored models.Profile
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.Profile) (models.Profile, error) {
			stored = p
			return p, nil
		})

	created, err := svc.Create(context.Background(), models.SignupRequest{
		Email:    "  Amina@Uni.AC.ke ",
		Password: "secret",
		Name:     "Amina Bakes",
		Products: []models.Product{{Name: "Cupcakes", Price: "KES 100"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "id-1", created.ID)
	assert.Equal(t, "amina@uni.ac.ke", created.Email)
	assert.Empty(t, created.Password)
	assert.Equal(t, DefaultRating, created.Rating)
	assert.Zero(t, created.ReviewCount)
	assert.False(t, created.Featured)
	assert.Equal(t, testNow, created.CreatedAt)

	require.Len(t, created.Products, 1)
	assert.Equal(t, "id-2", created.Products[0].ID)
	assert.Equal(t, testNow, created.Products[0].CreatedDate)
	assert.Equal(t, testNow, created.Products[0].UpdatedDate)

	assert.True(t, utils.IsPasswordHash(stored.Password))
}

func TestProfileService_Create_NoProductsIsEmptyList(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestProfileSvc(t, ctrl)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.Profile) (models.Profile, error) { return p, nil })

	created, err := svc.Create(context.Background(), models.SignupRequest{Email: "a@b.c", Password: "x"})
	require.NoError(t, err)
	assert.NotNil(t, created.Products)
	assert.Empty(t, created.Products)
}

func TestProfileService_Create_DistinctSalts(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestProfileSvc(t, ctrl)

	var hashes []string
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(2).
		DoAndReturn(func(_ context.Context, p models.Profile) (models.Profile, error) {
			hashes = append(hashes, p.Password)
			return p, nil
		})

	_, err := svc.Create(context.Background(), models.SignupRequest{Email: "a@b.c", Password: "same"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), models.SignupRequest{Email: "d@e.f", Password: "same"})
	require.NoError(t, err)

	require.Len(t, hashes, 2)
	assert.NotEqual(t, hashes[0], hashes[1])
}

func TestProfileService_Create_Errors(t *testing.T) {
	tests := []struct {
		name    string
		request models.SignupRequest
		repoErr error
		wantErr error
	}{
		{
			name:    "missing email",
			request: models.SignupRequest{Password: "x"},
			wantErr: ErrValidation,
		},
		{
			name:    "blank password",
			request: models.SignupRequest{Email: "a@b.c", Password: "   "},
			wantErr: ErrValidation,
		},
		{
			name:    "password longer than 72 bytes",
			request: models.SignupRequest{Email: "a@b.c", Password: strings.Repeat("p", 80)},
			wantErr: ErrValidation,
		},
		{
			// 30 characters, 90 bytes
			name:    "multibyte password longer than 72 bytes",
			request: models.SignupRequest{Email: "a@b.c", Password: strings.Repeat("€", 30)},
			wantErr: ErrValidation,
		},
		{
			name:    "duplicate email",
			request: models.SignupRequest{Email: "a@b.c", Password: "x"},
			repoErr: fmt.Errorf("insert: %w", store.ErrEmailAlreadyExists),
			wantErr: ErrDuplicateEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo := newTestProfileSvc(t, ctrl)
			if tt.repoErr != nil {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Profile{}, tt.repoErr)
			}

			_, err := svc.Create(context.Background(), tt.request)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── Read ─────────────────────────────────────────────────────────────────────

func TestProfileService_ListAndGetAreRedacted(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestProfileSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().List(gomock.Any()).Return([]models.Profile{
		{ID: "p1", Password: "h1"},
		{ID: "p2", Password: "h2"},
	}, nil)
	repo.EXPECT().Get(gomock.Any(), "p1").Return(models.Profile{ID: "p1", Password: "h1"}, nil)
	repo.EXPECT().Get(gomock.Any(), "nope").Return(models.Profile{}, store.ErrProfileNotFound)

	profiles, err := svc.List(ctx)
	require.NoError(t, err)
	for _, p := range profiles {
		assert.Empty(t, p.Password)
	}

	profile, err := svc.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, profile.Password)

	_, err = svc.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestProfileService_Update(t *testing.T) {
	created := testNow.Add(-48 * time.Hour)
	stored := models.Profile{
		ID:          "p1",
		Email:       "amina@uni.ac.ke",
		Password:    "$2a$10$hash",
		Name:        "Amina",
		Bio:         "old bio",
		Rating:      4.5,
		ReviewCount: 2,
		Featured:    true,
		Products: []models.Product{
			{ID: "prod-1", Name: "Cupcakes", CreatedDate: created, UpdatedDate: created},
		},
	}

	ctrl := gomock.NewController(t)
	svc, repo := newTestProfileSvc(t, ctrl)
	repo.EXPECT().Update(gomock.Any(), "p1", gomock.Any()).DoAndReturn(applyMutator(stored))

	updated, err := svc.Update(context.Background(), "p1", "p1", models.ProfilePatch{
		Email: ptr("NEW@Uni.ac.ke"),
		Bio:   ptr("new bio"),
		Products: &[]models.Product{
			{ID: "prod-1", Name: "Cupcakes v2"},
			{Name: "Cookies"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "new@uni.ac.ke", updated.Email)
	assert.Equal(t, "new bio", updated.Bio)
	assert.Equal(t, "Amina", updated.Name)
	assert.Equal(t, 4.5, updated.Rating)
	assert.Equal(t, 2, updated.ReviewCount)
	assert.True(t, updated.Featured)
	assert.Empty(t, updated.Password)
	assert.Equal(t, testNow, updated.UpdatedAt)

	require.Len(t, updated.Products, 2)
	assert.Equal(t, "prod-1", updated.Products[0].ID)
	assert.Equal(t, created, updated.Products[0].CreatedDate)
	assert.Equal(t, testNow, updated.Products[0].UpdatedDate)
	assert.Equal(t, "id-1", updated.Products[1].ID)
	assert.Equal(t, testNow, updated.Products[1].CreatedDate)
}

func TestProfileService_Update_Errors(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		callerID string
		patch    models.ProfilePatch
		repoErr  error
		wantErr  error
	}{
		{name: "foreign caller", id: "p1", callerID: "p2", wantErr: ErrForbidden},
		{name: "anonymous caller", id: "p1", callerID: "", wantErr: ErrForbidden},
		{name: "blank email", id: "p1", callerID: "p1", patch: models.ProfilePatch{Email: ptr(" ")}, wantErr: ErrValidation},
		{name: "missing profile", id: "p1", callerID: "p1", repoErr: store.ErrProfileNotFound, wantErr: ErrProfileNotFound},
		{name: "email taken", id: "p1", callerID: "p1", repoErr: store.ErrEmailAlreadyExists, wantErr: ErrDuplicateEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo := newTestProfileSvc(t, ctrl)
			if tt.repoErr != nil {
				repo.EXPECT().Update(gomock.Any(), tt.id, gomock.Any()).Return(models.Profile{}, tt.repoErr)
			}

			_, err := svc.Update(context.Background(), tt.id, tt.callerID, tt.patch)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestProfileService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestProfileSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().Get(gomock.Any(), "p1").Return(models.Profile{ID: "p1"}, nil),
		repo.EXPECT().Delete(gomock.Any(), "p1").Return(nil),
		repo.EXPECT().Get(gomock.Any(), "p1").Return(models.Profile{}, store.ErrProfileNotFound),
	)

	require.NoError(t, svc.Delete(ctx, "p1", "p1"))
	assert.ErrorIs(t, svc.Delete(ctx, "p1", "p1"), ErrProfileNotFound)
}

func TestProfileService_Delete_Errors(t *testing.T) {
	t.Run("not found before ownership", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newTestProfileSvc(t, ctrl)
		repo.EXPECT().Get(gomock.Any(), "p1").Return(models.Profile{}, store.ErrProfileNotFound)

		assert.ErrorIs(t, svc.Delete(context.Background(), "p1", "p2"), ErrProfileNotFound)
	})

	t.Run("foreign caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newTestProfileSvc(t, ctrl)
		repo.EXPECT().Get(gomock.Any(), "p1").Return(models.Profile{ID: "p1"}, nil)

		assert.ErrorIs(t, svc.Delete(context.Background(), "p1", "p2"), ErrForbidden)
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newTestProfileSvc(t, ctrl)
		repo.EXPECT().Get(gomock.Any(), "p1").Return(models.Profile{ID: "p1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "p1").Return(errors.New("disk full"))

		err := svc.Delete(context.Background(), "p1", "p1")
		require.Error(t, err)
		assert.ErrorContains(t, err, "disk full")
	})
}

// ── Validation wrapper ───────────────────────────────────────────────────────

func TestProfileValidationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockProfileService(ctrl)
	svc := NewProfileValidationService().Wrap(inner)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.SignupRequest{Email: "not-an-email", Password: "x"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Update(ctx, "p1", "p1", models.ProfilePatch{Email: ptr("broken")})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Update(ctx, "p1", "p2", models.ProfilePatch{Email: ptr("broken")})
	assert.ErrorIs(t, err, ErrForbidden)

	valid := models.SignupRequest{Email: "amina@uni.ac.ke", Password: "secret123"}
	inner.EXPECT().Create(gomock.Any(), valid).Return(models.Profile{ID: "p1"}, nil)
	profile, err := svc.Create(ctx, valid)
	require.NoError(t, err)
	assert.Equal(t, "p1", profile.ID)

	inner.EXPECT().Delete(gomock.Any(), "p1", "p1").Return(nil)
	assert.NoError(t, svc.Delete(ctx, "p1", "p1"))
}
