// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Profile is a single entrepreneur ("hustler") account together with its
// storefront. The stored password never leaves the server: it is excluded
// from JSON so every serialized Profile is already redacted.
type Profile struct {
	// ID is a time-ordered UUIDv7 assigned at creation.
	ID string `json:"id"`

	// Email is unique across all profiles, compared case-insensitively.
	Email string `json:"email"`

	// Password holds a bcrypt hash, or plain text for legacy records that
	// have not logged in since hashing was introduced.
	Password string `json:"-"`

	Name         string   `json:"name,omitempty"`
	University   string   `json:"university,omitempty"`
	Category     string   `json:"category,omitempty"`
	Location     string   `json:"location,omitempty"`
	Bio          string   `json:"bio,omitempty"`
	ProfileImage string   `json:"profileImage,omitempty"`
	WhatsApp     string   `json:"whatsapp,omitempty"`
	Services     []string `json:"services,omitempty"`
	Pricing      string   `json:"pricing,omitempty"`

	// Rating is the running average of all accepted reviews rounded to one
	// decimal place. See service.AggregateRating.
	Rating float64 `json:"rating"`

	// ReviewCount is incremented exactly once per accepted review.
	ReviewCount int `json:"reviewCount"`

	Products []Product `json:"products"`

	// Featured is only ever set out of band.
	Featured bool `json:"featured"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Redacted returns a copy of p without the password. Profile already hides
// the password from JSON; Redacted additionally clears it from memory so it
// cannot leak through logging or debugging helpers.
func (p Profile) Redacted() Profile {
	p.Password = ""
	return p
}

// RedactAll redacts every profile in the slice in place and returns it.
func RedactAll(profiles []Profile) []Profile {
	for i := range profiles {
		profiles[i].Password = ""
	}
	return profiles
}
