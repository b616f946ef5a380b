// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
	ErrInvalidInput    = errors.New("invalid input")
)

// FieldError describes one rejected field using its JSON name.
type FieldError struct {
	Field string
	Rule  string
}

func (e FieldError) message() string {
	switch e.Rule {
	case "required", "notblank":
		return e.Field + " is required"
	case "email":
		return e.Field + " must be a valid email address"
	case "min", "max":
		return e.Field + " is out of range"
	default:
		return e.Field + " is invalid"
	}
}

// ValidationError lists every rejected field. It matches [ErrInvalidInput]
// with errors.Is.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		messages = append(messages, f.message())
	}
	return strings.Join(messages, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
