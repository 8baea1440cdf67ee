// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-match-client/internal/adapter"
	"github.com/MKhiriev/go-match-client/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The original error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		if msg == app.MsgEmailAlreadyRegistered {
			return fmt.Errorf("%w: %w", ErrEmailAlreadyRegistered, err)
		}

	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrUserNotFound, err)
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
