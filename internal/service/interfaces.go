// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-scrims/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// IdentityService registers, authenticates and looks up users, and rotates
// their passwords. Every error it returns carries a [Kind].
type IdentityService interface {
	CreateUser(ctx context.Context, username, email, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.LoginResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.User, error)
	SearchByUsername(ctx context.Context, query string) ([]models.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, currentPassword, newPassword string) (bool, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// TeamService creates and reads teams. Team creation checks the owner
// against the identity service.
type TeamService interface {
	CreateTeam(ctx context.Context, name, tag, description string, ownerID uuid.UUID) (models.Team, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.Team, error)
	List(ctx context.Context, filter models.TeamFilter) (models.TeamPage, error)
}

// TokenService issues and verifies session tokens. Both services share its
// key and issuer, so a token issued by one is accepted by the other.
type TokenService interface {
	Issue(ctx context.Context, user models.User) (models.Token, error)
	Parse(ctx context.Context, tokenString string) (models.Token, error)
}
