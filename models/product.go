// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Product is owned by exactly one Profile and has no lifecycle of its own:
// products are created, changed and removed through a profile update.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`

	// Price is a display string. No arithmetic is ever performed on it.
	Price string `json:"price,omitempty"`

	Images   []string `json:"images,omitempty"`
	Category string   `json:"category,omitempty"`
	InStock  bool     `json:"inStock"`

	CreatedDate time.Time `json:"createdDate"`
	UpdatedDate time.Time `json:"updatedDate"`
}
