// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-match-client/internal/adapter"
	"github.com/MKhiriev/go-match-client/internal/logger"
	"github.com/MKhiriev/go-match-client/internal/validators"
	"github.com/MKhiriev/go-match-client/models"
)

type clientProfileService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator

	logger *logger.Logger
}

// NewClientProfileService returns a [ClientProfileService] backed by the
// adapter.
func NewClientProfileService(serverAdapter adapter.ServerAdapter, validator validators.Validator, logger *logger.Logger) ClientProfileService {
	return &clientProfileService{adapter: serverAdapter, validator: validator, logger: logger}
}

func (p *clientProfileService) UpdateProfile(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	if err := p.validator.Validate(ctx, update); err != nil {
		return models.User{}, err
	}
	if update.IsEmpty() {
		return models.User{}, ErrNothingToUpdate
	}

	user, err := p.adapter.UpdateUser(ctx, userID, update)
	if err != nil {
		return models.User{}, fmt.Errorf("update profile: %w", mapAdapterError(err))
	}

	return user, nil
}

func (p *clientProfileService) DeleteAccount(ctx context.Context, userID int64) error {
	if err := p.adapter.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("delete account: %w", mapAdapterError(err))
	}

	p.logger.Info().Int64("user_id", userID).Msg("account deleted")
	return nil
}
