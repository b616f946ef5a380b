// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the payload of a session token.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Email is the subject's email at the time the token was issued.
	Email string `json:"email"`
}

// Token is a parsed or freshly signed session token.
type Token struct {
	// Token is the underlying JWT. It is nil for tokens built by hand in tests.
	*jwt.Token `json:"-"`

	TokenClaims

	// SignedString is the compact serialized form sent to clients.
	SignedString string `json:"-"`

	// ProfileID is the subject of the token.
	ProfileID string `json:"-"`
}

func (t *Token) String() string {
	return t.SignedString
}
