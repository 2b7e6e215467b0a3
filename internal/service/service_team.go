// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-scrims/internal/adapter"
	"github.com/MKhiriev/go-scrims/internal/logger"
	"github.com/MKhiriev/go-scrims/internal/store"
	"github.com/MKhiriev/go-scrims/internal/utils"
	"github.com/MKhiriev/go-scrims/internal/validators"
	"github.com/MKhiriev/go-scrims/models"
	"github.com/google/uuid"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// teamService is the concrete implementation of TeamService.
type teamService struct {
	teamRepository store.TeamRepository

	// identityValidator confirms team owners against the identity service.
	identityValidator adapter.IdentityValidator

	validator   validators.Validator
	idGenerator *utils.UUIDGenerator
	now         func() time.Time

	logger *logger.Logger
}

func NewTeamService(teamRepository store.TeamRepository, identityValidator adapter.IdentityValidator, logger *logger.Logger) TeamService {
	return &teamService{
		teamRepository:    teamRepository,
		identityValidator: identityValidator,
		validator:         validators.NewTeamValidator(),
		idGenerator:       utils.NewUUIDGenerator(),
		now:               time.Now,
		logger:            logger,
	}
}

// CreateTeam creates a team owned by ownerID whose only member is the owner.
//
// Checks run in a fixed order and the first failure wins:
//  1. name length in [6,60]    -> KindInvalidArgument
//  2. tag length exactly 3     -> KindInvalidArgument
//  3. owner exists remotely    -> KindNotFound, or KindInternal if the
//     identity service gave no answer
//  4. name not taken           -> KindAlreadyExists
//
// The owner check and the name check are not atomic with the insert; the
// unique constraint on the team name settles concurrent creations.
func (s *teamService) CreateTeam(ctx context.Context, name, tag, description string, ownerID uuid.UUID) (models.Team, error) {
	log := logger.FromContext(ctx)

	team := models.Team{Name: name, Tag: tag, Description: description, OwnerID: ownerID}
	if err := s.validator.Validate(ctx, team, validators.FieldTeamName, validators.FieldTeamTag); err != nil {
		log.Error().Err(err).Str("name", name).Str("tag", tag).Msg("invalid team data provided")
		return models.Team{}, invalidArgument(err.Error(), err)
	}

	exists, err := s.identityValidator.Exists(ctx, ownerID)
	if err != nil {
		log.Err(err).Str("owner_id", ownerID.String()).Msg("owner lookup failed")
		return models.Team{}, internal(err)
	}
	if !exists {
		log.Warn().Str("owner_id", ownerID.String()).Msg("owner not found")
		return models.Team{}, notFound(MsgOwnerNotFound, nil)
	}

	_, err = s.teamRepository.FindTeamByName(ctx, name)
	if err == nil {
		log.Warn().Str("name", name).Msg("team name already taken")
		return models.Team{}, alreadyExists(MsgTeamNameTaken, store.ErrTeamNameAlreadyExists)
	}
	if !errors.Is(err, store.ErrNoTeamWasFound) {
		log.Err(err).Str("name", name).Msg("team search by name failed")
		return models.Team{}, internal(err)
	}

	now := s.now().UTC().Truncate(time.Microsecond)
	team.ID = s.idGenerator.Generate()
	team.MemberIDs = []uuid.UUID{ownerID}
	team.CreatedAt = now
	team.UpdatedAt = now

	created, err := s.teamRepository.CreateTeam(ctx, team)
	if err != nil {
		log.Err(err).Str("name", name).Msg("team creation ended with error")
		return models.Team{}, fromStoreError(err)
	}

	log.Info().Str("team_id", created.ID.String()).Str("owner_id", ownerID.String()).Msg("team created")
	return created, nil
}

func (s *teamService) GetByID(ctx context.Context, id uuid.UUID) (models.Team, error) {
	if id == uuid.Nil {
		return models.Team{}, invalidArgument(MsgEmptyID, nil)
	}

	team, err := s.teamRepository.FindTeamByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("team_id", id.String()).Msg("team search by id failed")
		return models.Team{}, fromStoreError(err)
	}

	return team, nil
}

// List returns one page of teams, newest first, together with the size of
// the whole filtered set. A zero page or page size falls back to the
// defaults; negative values and page sizes above 100 are rejected.
func (s *teamService) List(ctx context.Context, filter models.TeamFilter) (models.TeamPage, error) {
	if filter.Page == 0 {
		filter.Page = DefaultPage
	}
	if filter.PageSize == 0 {
		filter.PageSize = DefaultPageSize
	}

	if err := s.validator.Validate(ctx, filter); err != nil {
		return models.TeamPage{}, invalidArgument(err.Error(), err)
	}

	teams, total, err := s.teamRepository.ListTeams(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Any("filter", filter).Msg("listing teams failed")
		return models.TeamPage{}, internal(err)
	}

	return models.TeamPage{
		Items:      teams,
		TotalCount: total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
	}, nil
}
