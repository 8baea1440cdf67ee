// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the
// matchmaking backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-match-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the matchmaking backend. Every
// method is a single request/response pair: no retries, no backoff.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent requests. An empty token removes the header.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// ListUsers fetches GET /users/.
	ListUsers(ctx context.Context) ([]models.User, error)

	// GetUser fetches GET /users/:id. Returns [ErrNotFound] (wrapped) for an
	// unknown id.
	GetUser(ctx context.Context, userID int64) (models.User, error)

	// CreateUser posts the user to POST /users/ and returns the stored record.
	// A duplicate email yields [ErrBadRequest] with the backend's detail.
	CreateUser(ctx context.Context, user models.UserCreate) (models.User, error)

	// UpdateUser sends the partial update to PUT /users/:id and returns the
	// stored record.
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)

	// DeleteUser removes the user via DELETE /users/:id.
	DeleteUser(ctx context.Context, userID int64) error

	// GetMatches fetches GET /users/:id/matches. Only the defined filter
	// fields are sent as query parameters. The order of the returned matches
	// is the backend's.
	GetMatches(ctx context.Context, userID int64, filters models.MatchFilters) (models.MatchResponse, error)
}
