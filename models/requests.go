// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SignupRequest is a profile candidate submitted on signup. Rating,
// reviewCount and featured are server-maintained and cannot be supplied.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,notblank,max=72"`

	Name         string    `json:"name"`
	University   string    `json:"university"`
	Category     string    `json:"category"`
	Location     string    `json:"location"`
	Bio          string    `json:"bio"`
	ProfileImage string    `json:"profileImage"`
	WhatsApp     string    `json:"whatsapp"`
	Services     []string  `json:"services"`
	Pricing      string    `json:"pricing"`
	Products     []Product `json:"products" validate:"dive"`
}

// ProfilePatch is a partial profile update. Only non-nil fields overwrite the
// stored profile. Fields that must never change through an update (id,
// password, rating, reviewCount, featured) are deliberately absent, so they
// are dropped while decoding.
type ProfilePatch struct {
	Email        *string    `json:"email,omitempty" validate:"omitempty,email"`
	Name         *string    `json:"name,omitempty"`
	University   *string    `json:"university,omitempty"`
	Category     *string    `json:"category,omitempty"`
	Location     *string    `json:"location,omitempty"`
	Bio          *string    `json:"bio,omitempty"`
	ProfileImage *string    `json:"profileImage,omitempty"`
	WhatsApp     *string    `json:"whatsapp,omitempty"`
	Services     *[]string  `json:"services,omitempty"`
	Pricing      *string    `json:"pricing,omitempty"`
	Products     *[]Product `json:"products,omitempty" validate:"omitempty,dive"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}
