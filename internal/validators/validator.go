// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/mshconnect/campus-hustle/models"
)

// RequestValidator validates request payloads using their `validate` struct
// tags. Field names in errors are the JSON names clients send.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator returns a Validator for the request models.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json names instead of Go field names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "notblank", nonstandard.NotBlank)

	return &RequestValidator{validate: v}
}

// mustRegister panics when a custom rule cannot be registered; the request
// models depend on every rule being present.
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validators: registering %q: %v", tag, err))
	}
}

// Validate checks obj, which must be one of the request models (value or
// pointer). When fields are given only those struct fields are checked.
func (r *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch obj.(type) {
	case models.SignupRequest, *models.SignupRequest,
		models.ProfilePatch, *models.ProfilePatch,
		models.ReviewRequest, *models.ReviewRequest,
		models.LoginRequest, *models.LoginRequest,
		models.Product, *models.Product:
	default:
		return ErrUnsupportedType
	}

	var err error
	if len(fields) > 0 {
		err = r.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = r.validate.StructCtx(ctx, obj)
	}

	return toValidationError(err)
}

func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return ErrUnsupportedType
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	result := &ValidationError{Fields: make([]FieldError, 0, len(fieldErrors))}
	for _, fe := range fieldErrors {
		result.Fields = append(result.Fields, FieldError{
			Field: fieldPath(fe.Namespace()),
			Rule:  fe.Tag(),
		})
	}
	return result
}

// fieldPath drops the struct name from a validator namespace:
// "SignupRequest.products[0].name" becomes "products[0].name".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}
