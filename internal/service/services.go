// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-scrims/internal/adapter"
	"github.com/MKhiriev/go-scrims/internal/config"
	"github.com/MKhiriev/go-scrims/internal/crypto"
	"github.com/MKhiriev/go-scrims/internal/logger"
	"github.com/MKhiriev/go-scrims/internal/store"
)

// Services groups the services one binary exposes. A service the binary does
// not run is nil.
type Services struct {
	IdentityService IdentityService
	TeamService     TeamService
	TokenService    TokenService
}

// NewIdentityServices wires the identity binary: the validated identity
// service and the token service it signs sessions with.
func NewIdentityServices(repositories *store.Repositories, cfg config.IdentityConfig, logger *logger.Logger) (*Services, error) {
	tokenService, err := NewTokenService(cfg.App)
	if err != nil {
		return nil, fmt.Errorf("error creating token service: %w", err)
	}

	identityService := NewIdentityService(repositories.UserRepository, crypto.NewPasswordHasher(), tokenService, logger)

	return &Services{
		IdentityService: NewIdentityValidationService().Wrap(identityService),
		TokenService:    tokenService,
	}, nil
}

// NewTeamServices wires the team binary: the team service with its remote
// owner check and the token service used to authenticate callers.
func NewTeamServices(repositories *store.Repositories, cfg config.TeamConfig, logger *logger.Logger) (*Services, error) {
	tokenService, err := NewTokenService(cfg.App)
	if err != nil {
		return nil, fmt.Errorf("error creating token service: %w", err)
	}

	identityValidator, err := adapter.NewHTTPIdentityValidator(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating identity validator: %w", err)
	}

	return &Services{
		TeamService:  NewTeamService(repositories.TeamRepository, identityValidator, logger),
		TokenService: tokenService,
	}, nil
}
