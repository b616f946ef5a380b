// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// DefaultPasswordHashCost is the bcrypt cost used when none is configured.
const DefaultPasswordHashCost = 10

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

// ErrPasswordTooLong is returned for passwords bcrypt cannot hash.
var ErrPasswordTooLong = errors.New("password must be at most 72 bytes")

// bcryptPrefixes are the version markers bcrypt writes at the start of
// every hash. A stored password without one of them is legacy plain text.
var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// HashPassword returns a salted bcrypt hash of plain. Every call uses a fresh
// salt, so hashing the same password twice yields different outputs.
func HashPassword(plain string, cost int) (string, error) {
	if cost == 0 {
		cost = DefaultPasswordHashCost
	}
	if len(plain) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// IsPasswordHash reports whether stored carries a bcrypt marker.
func IsPasswordHash(stored string) bool {
	for _, prefix := range bcryptPrefixes {
		if strings.HasPrefix(stored, prefix) {
			return true
		}
	}
	return false
}

// ComparePassword checks plain against stored.
//
// legacy is true when stored is plain text and matched; the caller is then
// expected to rehash and persist the password. A bcrypt hash is compared with
// bcrypt's constant-time check; plain text with subtle.ConstantTimeCompare.
func ComparePassword(plain, stored string) (ok bool, legacy bool, err error) {
	if stored == "" {
		return false, false, nil
	}

	if IsPasswordHash(stored) {
		// no stored hash can come from an input this long
		if len(plain) > MaxPasswordBytes {
			return false, false, nil
		}
		err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain))
		switch {
		case err == nil:
			return true, false, nil
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return false, false, nil
		default:
			return false, false, fmt.Errorf("error comparing password hash: %w", err)
		}
	}

	if subtle.ConstantTimeCompare([]byte(plain), []byte(stored)) == 1 {
		return true, true, nil
	}

	return false, false, nil
}
