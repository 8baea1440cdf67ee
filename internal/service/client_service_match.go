// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-match-client/internal/adapter"
	"github.com/MKhiriev/go-match-client/internal/validators"
	"github.com/MKhiriev/go-match-client/models"
)

type clientMatchService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
}

// NewClientMatchService returns a [ClientMatchService] backed by the adapter.
func NewClientMatchService(serverAdapter adapter.ServerAdapter, validator validators.Validator) ClientMatchService {
	return &clientMatchService{adapter: serverAdapter, validator: validator}
}

func (m *clientMatchService) GetMatches(ctx context.Context, userID int64, filters models.MatchFilters) (models.MatchResponse, error) {
	if err := m.validator.Validate(ctx, filters); err != nil {
		return models.MatchResponse{}, err
	}

	resp, err := m.adapter.GetMatches(ctx, userID, filters)
	if err != nil {
		return models.MatchResponse{}, fmt.Errorf("get matches: %w", mapAdapterError(err))
	}

	return resp, nil
}
