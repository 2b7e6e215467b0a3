// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-scrims/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists identities of the identity service.
//
// Lookups return [ErrNoUserWasFound] when nothing matches. Inserts that hit
// a unique constraint return [ErrUsernameAlreadyExists] or
// [ErrEmailAlreadyExists].
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// UpdatePasswordHash replaces the stored hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string, updatedAt time.Time) error
	// SearchUsersByUsername returns users whose username contains query
	// (case-sensitive), oldest first.
	SearchUsersByUsername(ctx context.Context, query string) ([]models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// TeamRepository persists teams of the team service together with their
// member lists.
type TeamRepository interface {
	// CreateTeam stores the team and its MemberIDs atomically. A taken name
	// returns [ErrTeamNameAlreadyExists].
	CreateTeam(ctx context.Context, team models.Team) (models.Team, error)
	FindTeamByID(ctx context.Context, id uuid.UUID) (models.Team, error)
	FindTeamByName(ctx context.Context, name string) (models.Team, error)
	// ListTeams returns one page of teams matching filter, newest first,
	// and the number of matching teams before paging.
	ListTeams(ctx context.Context, filter models.TeamFilter) ([]models.Team, int, error)
}

// ErrorClassificator inspects driver errors for a single SQL dialect.
type ErrorClassificator interface {
	// Classify reports whether a failed operation may be retried.
	Classify(err error) ErrorClassification
	// UniqueViolation reports whether err is a unique constraint violation
	// and, if so, the violated "table.column".
	UniqueViolation(err error) (string, bool)
}
