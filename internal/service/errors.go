// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-match-client/internal/app"
)

var (
	// ErrInvalidCredentials is returned by login when no user has the email.
	ErrInvalidCredentials = errors.New(app.MsgInvalidCredentials)

	// ErrEmailAlreadyRegistered is returned when the backend refuses an email
	// that belongs to another user.
	ErrEmailAlreadyRegistered = errors.New(app.MsgEmailAlreadyRegistered)

	// ErrUserNotFound is returned when the backend does not know the user id.
	ErrUserNotFound = errors.New(app.MsgUserNotFound)

	// ErrNothingToUpdate is returned for a profile update without fields.
	ErrNothingToUpdate = errors.New("nothing to update")
)
