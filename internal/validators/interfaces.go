// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides the form validation schemas of the client.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - ValidationError: field name to human-readable message, returned before
//     any request reaches the network.
//
// Rules are declared as `validate` struct tags on the models and enforced
// with go-playground/validator; messages follow the wording users see in
// the forms.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts the reported errors to specific named fields.
	Validate(context.Context, any, ...string) error
}
