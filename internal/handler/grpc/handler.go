// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc implements the gRPC transport of the identity and team
// services. It currently exposes the standard gRPC health service, reporting
// the overall status and one status per service the binary runs.
package grpc

import (
	"github.com/MKhiriev/go-scrims/internal/logger"
	"github.com/MKhiriev/go-scrims/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Health service names reported alongside the overall ("") status.
const (
	IdentityServiceName = "scrims.identity.v1.IdentityService"
	TeamServiceName     = "scrims.team.v1.TeamService"
)

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services

	health *health.Server

	logger *logger.Logger
}

// NewHandler creates a Handler whose health server reports SERVING for the
// overall status and for every service present in services.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	if services.IdentityService != nil {
		healthServer.SetServingStatus(IdentityServiceName, healthpb.HealthCheckResponse_SERVING)
	}
	if services.TeamService != nil {
		healthServer.SetServingStatus(TeamServiceName, healthpb.HealthCheckResponse_SERVING)
	}

	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   healthServer,
		logger:   logger,
	}
}

// Register attaches the handler's services to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// Shutdown flips every status to NOT_SERVING so that load balancers drain
// the instance before the server stops.
func (h *Handler) Shutdown() {
	h.logger.Info().Msg("gRPC health set to NOT_SERVING")
	h.health.Shutdown()
}
