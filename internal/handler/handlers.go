// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler assembles the transport handlers of a binary.
package handler

import (
	"github.com/MKhiriev/go-scrims/internal/config"
	"github.com/MKhiriev/go-scrims/internal/handler/grpc"
	"github.com/MKhiriev/go-scrims/internal/handler/http"
	"github.com/MKhiriev/go-scrims/internal/logger"
	"github.com/MKhiriev/go-scrims/internal/service"
)

// Handlers holds the transport handlers enabled by configuration. A transport
// without an address has a nil handler.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.RequestTimeout, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
