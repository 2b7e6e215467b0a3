// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-scrims/internal/logger"
	"github.com/MKhiriev/go-scrims/internal/service"
)

// Handler serves the REST API of one binary. Route groups are registered only
// for the services present in services.
type Handler struct {
	services *service.Services

	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler creates a Handler. A positive requestTimeout bounds every
// request context.
func NewHandler(services *service.Services, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
