// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/mshconnect/campus-hustle/internal/service"
	"github.com/mshconnect/campus-hustle/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func authAs(m testMocks, token, profileID string) {
	m.auth.EXPECT().ParseToken(gomock.Any(), token).Return(models.Token{ProfileID: profileID}, nil)
}

func TestGetProfile(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		mocks.profiles.EXPECT().Get(gomock.Any(), "p1").
			Return(models.Profile{ID: "p1", Name: "Amina", Password: "never-sent"}, nil)

		rec := serve(h, http.MethodGet, "/api/profiles/p1", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "password")
		assert.NotContains(t, rec.Body.String(), "never-sent")
	})

	t.Run("missing", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		mocks.profiles.EXPECT().Get(gomock.Any(), "nope").Return(models.Profile{}, service.ErrProfileNotFound)

		rec := serve(h, http.MethodGet, "/profiles/nope", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, CodeNotFound, decodeError(t, rec).Code)
	})
}

func TestCreateProfile(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		mocks.profiles.EXPECT().
			Create(gomock.Any(), gomock.Cond(func(r models.SignupRequest) bool {
				return r.Email == "a@x.com" && r.Password == "secret123" && r.Name == "Amina"
			})).
			Return(models.Profile{ID: "p1", Email: "a@x.com", Name: "Amina", Rating: 5}, nil)

		rec := serve(h, http.MethodPost, "/profiles",
			`{"email":"a@x.com","password":"secret123","name":"Amina","rating":1,"featured":true}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotContains(t, body, "password")
		assert.Equal(t, "p1", body["id"])
	})

	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantCode   string
	}{
		{name: "invalid json", body: `[`, wantStatus: http.StatusBadRequest, wantCode: CodeValidationError},
		{
			name:       "validation",
			body:       `{"email":"a@x.com"}`,
			serviceErr: fmt.Errorf("%w: password is required", service.ErrValidation),
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeValidationError,
		},
		{
			name:       "duplicate email",
			body:       `{"email":"a@x.com","password":"x"}`,
			serviceErr: service.ErrDuplicateEmail,
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeDuplicateEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t)
			if tt.serviceErr != nil {
				mocks.profiles.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Profile{}, tt.serviceErr)
			}

			rec := serve(h, http.MethodPost, "/profiles", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestCreateProfile_BodyTooLarge(t *testing.T) {
	h, _ := newTestHandler(t)
	h.cfg.MaxBodyBytes = 16

	rec := serve(h, http.MethodPost, "/profiles", `{"email":"a@x.com","password":"secret123"}`)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestUpdateProfile(t *testing.T) {
	t.Run("owner updates", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		authAs(mocks, "tok", "p1")
		mocks.profiles.EXPECT().
			Update(gomock.Any(), "p1", "p1", gomock.Cond(func(p models.ProfilePatch) bool {
				return p.Bio != nil && *p.Bio == "new bio" && p.Name == nil
			})).
			Return(models.Profile{ID: "p1", Bio: "new bio"}, nil)

		rec := serve(h, http.MethodPut, "/profiles/p1", `{"bio":"new bio"}`, "Authorization", "Bearer tok")

		require.Equal(t, http.StatusOK, rec.Code)
		var profile models.Profile
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
		assert.Equal(t, "new bio", profile.Bio)
	})

	t.Run("foreign caller", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		authAs(mocks, "tok", "p2")
		mocks.profiles.EXPECT().Update(gomock.Any(), "p1", "p2", gomock.Any()).Return(models.Profile{}, service.ErrForbidden)

		rec := serve(h, http.MethodPut, "/api/profiles/p1", `{"bio":"x"}`, "Authorization", "Bearer tok")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, CodeForbidden, decodeError(t, rec).Code)
	})

	t.Run("invalid json", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		authAs(mocks, "tok", "p1")

		rec := serve(h, http.MethodPut, "/profiles/p1", `{"bio":`, "Authorization", "Bearer tok")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateProfile_DecodeErrorsNameJSONFields(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantMessage string
	}{
		{
			name:        "wrong type",
			body:        `{"services":"braids"}`,
			wantMessage: "request body is not valid JSON: services has the wrong type",
		},
		{
			name:        "truncated body",
			body:        `{"bio":`,
			wantMessage: "request body is not valid JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t)
			authAs(mocks, "tok", "p1")

			rec := serve(h, http.MethodPut, "/profiles/p1", tt.body, "Authorization", "Bearer tok")

			require.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, CodeValidationError, body.Code)
			assert.Equal(t, tt.wantMessage, body.Message)
			assert.NotContains(t, body.Message, "Go ")
			assert.NotContains(t, body.Message, "ProfilePatch")
		})
	}
}

func TestDeleteProfile(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusOK},
		{name: "missing", serviceErr: service.ErrProfileNotFound, wantStatus: http.StatusNotFound},
		{name: "foreign caller", serviceErr: service.ErrForbidden, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t)
			authAs(mocks, "tok", "p1")
			mocks.profiles.EXPECT().Delete(gomock.Any(), "p1", "p1").Return(tt.serviceErr)

			rec := serve(h, http.MethodDelete, "/profiles/p1", "", "Authorization", "Bearer tok")

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.serviceErr == nil {
				assert.JSONEq(t, `{"success":true}`, rec.Body.String())
			}
		})
	}
}
