// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-match-client/models"
)

const tagMinNotAbove = "min_not_above"

// FormValidator validates the client forms (login, register, profile
// update, match filters) against their `validate` struct tags.
type FormValidator struct {
	validate *validator.Validate
}

// NewFormValidator returns a [Validator] for the client forms.
func NewFormValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterStructValidation(validateMatchFilters, models.MatchFilters{})

	return &FormValidator{validate: v}
}

// Validate checks obj. When fields are given, only errors on those fields
// are reported.
func (f *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	err := f.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	result := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		field, element := baseFieldName(fe.Field())
		if len(fields) > 0 && !slices.Contains(fields, field) {
			continue
		}
		if _, seen := result[field]; seen {
			continue
		}
		result[field] = message(field, fe.Tag(), element)
	}

	if len(result) == 0 {
		return nil
	}
	return &ValidationError{Fields: result}
}

// validateMatchFilters rejects a minimum age above the maximum age.
func validateMatchFilters(sl validator.StructLevel) {
	filters := sl.Current().Interface().(models.MatchFilters)
	if filters.MinAge != nil && filters.MaxAge != nil && *filters.MinAge > *filters.MaxAge {
		sl.ReportError(filters.MaxAge, models.FilterMaxAge, "MaxAge", tagMinNotAbove, "")
	}
}

// baseFieldName turns "interests[2]" into "interests".
func baseFieldName(field string) (string, bool) {
	if i := strings.IndexByte(field, '['); i >= 0 {
		return field[:i], true
	}
	return field, false
}
