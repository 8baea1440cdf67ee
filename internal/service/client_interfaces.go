// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client-side business operations on top of
// the backend adapter: the simulated login and registration, profile updates
// and the match query. Every operation validates its input before any
// request is sent.
package service

import (
	"context"

	"github.com/MKhiriev/go-match-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side simulation of authentication.
//
// It is NOT a security mechanism: the password never leaves the form and the
// token is a non-cryptographic placeholder.
type ClientAuthService interface {
	// Login fetches the user list and picks the user whose email equals
	// creds.Email. The password has no effect on the outcome.
	// Returns [ErrInvalidCredentials] when no user matches, or a
	// *validators.ValidationError before any request for malformed input.
	Login(ctx context.Context, creds models.LoginCredentials) (models.AuthResult, error)

	// Register validates creds, drops the password and creates the user on
	// the backend. Returns [ErrEmailAlreadyRegistered] for a taken email.
	Register(ctx context.Context, creds models.RegisterCredentials) (models.AuthResult, error)

	// UseToken makes the adapter attach token to every following request.
	// An empty token stops sending the Authorization header.
	UseToken(token string)
}

// ClientProfileService defines profile operations for the signed-in user.
type ClientProfileService interface {
	// UpdateProfile validates update and sends it to the backend, returning
	// the stored user. Returns [ErrNothingToUpdate] for an empty update
	// without any request.
	UpdateProfile(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)

	// DeleteAccount removes the user from the backend.
	DeleteAccount(ctx context.Context, userID int64) error
}

// ClientMatchService defines the match query.
type ClientMatchService interface {
	// GetMatches validates filters and fetches the matches of userID. Only
	// the defined filters are sent.
	GetMatches(ctx context.Context, userID int64, filters models.MatchFilters) (models.MatchResponse, error)
}
