// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-match-client/internal/adapter"
	"github.com/MKhiriev/go-match-client/internal/logger"
	"github.com/MKhiriev/go-match-client/internal/validators"
)

// ClientServices groups the client-side services.
type ClientServices struct {
	AuthService    ClientAuthService
	ProfileService ClientProfileService
	MatchService   ClientMatchService
}

// NewClientServices wires all services to one adapter and one form
// validator.
func NewClientServices(serverAdapter adapter.ServerAdapter, validator validators.Validator, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:    NewClientAuthService(serverAdapter, validator, logger),
		ProfileService: NewClientProfileService(serverAdapter, validator, logger),
		MatchService:   NewClientMatchService(serverAdapter, validator),
	}
}
