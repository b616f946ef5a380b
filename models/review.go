// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"
)

// Review is an accepted review together with a snapshot of the reviewed
// profile taken at submission time.
type Review struct {
	ID        string `json:"id"`
	ProfileID string `json:"profileId"`

	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`

	// Hustler and University are denormalized from the profile when the
	// review is accepted and are not updated afterwards.
	Hustler    string `json:"hustler"`
	University string `json:"university,omitempty"`

	Date time.Time `json:"date"`
}

// ReviewRequest is the anonymous review payload.
type ReviewRequest struct {
	Name    string       `json:"name" validate:"required,notblank"`
	Rating  ReviewRating `json:"rating" validate:"required,min=1,max=5"`
	Comment string       `json:"comment" validate:"required,notblank"`
}

// ReviewRating accepts a rating sent either as a JSON number or as a numeric
// string, as the web client does both. Zero means "absent".
type ReviewRating int

// ErrRatingNotInteger is returned when a rating is not a whole number.
var ErrRatingNotInteger = errors.New("rating must be an integer")

func (r *ReviewRating) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		*r = 0
		return nil
	case float64:
		if value != float64(int(value)) {
			return ErrRatingNotInteger
		}
		*r = ReviewRating(int(value))
		return nil
	case string:
		value = strings.TrimSpace(value)
		if value == "" {
			*r = 0
			return nil
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return ErrRatingNotInteger
		}
		*r = ReviewRating(n)
		return nil
	default:
		return ErrRatingNotInteger
	}
}
