// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-match-client/internal/adapter"
	"github.com/MKhiriev/go-match-client/internal/logger"
	"github.com/MKhiriev/go-match-client/internal/validators"
	"github.com/MKhiriev/go-match-client/models"
)

type clientAuthService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

// NewClientAuthService returns the simulated [ClientAuthService].
func NewClientAuthService(serverAdapter adapter.ServerAdapter, validator validators.Validator, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:   serverAdapter,
		validator: validator,
		now:       time.Now,
		logger:    logger,
	}
}

func (a *clientAuthService) Login(ctx context.Context, creds models.LoginCredentials) (models.AuthResult, error) {
	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.AuthResult{}, err
	}

	users, err := a.adapter.ListUsers(ctx)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("login: %w", mapAdapterError(err))
	}

	for _, user := range users {
		if user.Email == creds.Email {
			a.logger.Debug().Int64("user_id", user.ID).Msg("login matched user by email")
			return models.AuthResult{Token: a.mockToken(user.ID), User: user}, nil
		}
	}

	return models.AuthResult{}, ErrInvalidCredentials
}

func (a *clientAuthService) Register(ctx context.Context, creds models.RegisterCredentials) (models.AuthResult, error) {
	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.AuthResult{}, err
	}

	user, err := a.adapter.CreateUser(ctx, creds.UserCreate())
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("register: %w", mapAdapterError(err))
	}

	a.logger.Debug().Int64("user_id", user.ID).Msg("registered user")
	return models.AuthResult{Token: a.mockToken(user.ID), User: user}, nil
}

func (a *clientAuthService) UseToken(token string) {
	a.adapter.SetToken(token)
}

// mockToken builds the placeholder token mock_token_<id>_<unix millis>.
func (a *clientAuthService) mockToken(userID int64) string {
	return fmt.Sprintf("mock_token_%d_%d", userID, a.now().UnixMilli())
}
