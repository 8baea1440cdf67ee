// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

var (
	// ErrValidation is wrapped by every [*ValidationError].
	ErrValidation = errors.New("validation failed")

	// ErrUnsupportedType is returned for values that are not structs.
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// ValidationError maps form field names (their JSON names) to messages.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range slices.Sorted(maps.Keys(e.Fields)) {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Field returns the message for field, or "" when the field is valid.
func (e *ValidationError) Field(field string) string {
	return e.Fields[field]
}

// FieldErrors extracts the per-field messages from err, or nil when err is
// not a validation error.
func FieldErrors(err error) map[string]string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}
