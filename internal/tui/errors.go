// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-match-client/internal/app"
	"github.com/MKhiriev/go-match-client/internal/service"
	"github.com/MKhiriev/go-match-client/internal/session"
	"github.com/MKhiriev/go-match-client/internal/validators"
)

var ErrUserQuit = errors.New("user quit")

// humanizeRequestError turns err into the single line shown under a form.
// Known business errors keep their text, an unreachable backend gets its own
// message and everything else falls back to the generic one.
func humanizeRequestError(err error, fallback string) string {
	if err == nil {
		return ""
	}

	for _, known := range []error{
		service.ErrInvalidCredentials,
		service.ErrEmailAlreadyRegistered,
		service.ErrUserNotFound,
		service.ErrNothingToUpdate,
		session.ErrAlreadyAuthenticated,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	if errors.Is(err, validators.ErrValidation) {
		return "Please fix the highlighted fields"
	}
	if errors.Is(err, session.ErrPersistSession) {
		return app.MsgSessionSaveFailed
	}
	if isServerUnavailable(err) {
		return app.MsgServerUnavailable
	}

	return fallback
}

func isServerUnavailable(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded")
}
