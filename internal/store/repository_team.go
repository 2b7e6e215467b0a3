// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-scrims/internal/logger"
	"github.com/MKhiriev/go-scrims/models"
	"github.com/google/uuid"
)

// teamRepository is the SQL implementation of [TeamRepository] over the
// "teams" and "team_members" tables.
type teamRepository struct {
	*DB
	logger *logger.Logger
}

// NewTeamRepository constructs a [TeamRepository] backed by the provided
// database connection and logger.
func NewTeamRepository(db *DB, logger *logger.Logger) TeamRepository {
	logger.Debug().Msg("creating team repository")
	return &teamRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateTeam inserts the team row and one team_members row per member inside
// a single transaction. The transaction is rolled back automatically (via
// defer) if any statement fails.
func (t *teamRepository) CreateTeam(ctx context.Context, team models.Team) (models.Team, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "teamRepository.CreateTeam").
		Str("team_id", team.ID.String()).
		Logger()

	teamQuery, teamArgs, err := buildCreateTeamQuery(t.dialect, team)
	if err != nil {
		log.Err(err).Msg("failed to build team query")
		return models.Team{}, err
	}
	membersQuery, membersArgs, err := buildAddTeamMembersQuery(t.dialect, team.ID, team.MemberIDs, team.CreatedAt)
	if err != nil {
		log.Err(err).Msg("failed to build members query")
		return models.Team{}, err
	}

	tx, err := t.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Bool("retryable", t.retryable(err)).Msg("failed to begin transaction")
		return models.Team{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, teamQuery, teamArgs...); err != nil {
		if uniqueErr := t.uniqueViolationError(err); uniqueErr != nil {
			log.Warn().Err(err).Msg("unique constraint violated")
			return models.Team{}, uniqueErr
		}
		log.Err(err).Str("pg_code", postgresError(err)).Bool("retryable", t.retryable(err)).Msg("failed to insert team")
		return models.Team{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err = tx.ExecContext(ctx, membersQuery, membersArgs...); err != nil {
		log.Err(err).Int("members_count", len(team.MemberIDs)).Bool("retryable", t.retryable(err)).Msg("failed to insert team members")
		return models.Team{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Bool("retryable", t.retryable(commitErr)).Msg("failed to commit transaction")
		return models.Team{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().Str("name", team.Name).Msg("team created")
	return team, nil
}

func (t *teamRepository) FindTeamByID(ctx context.Context, id uuid.UUID) (models.Team, error) {
	return t.findTeam(ctx, "id", id.String())
}

func (t *teamRepository) FindTeamByName(ctx context.Context, name string) (models.Team, error) {
	return t.findTeam(ctx, "name", name)
}

// findTeam returns the single team whose column equals value, with its
// members, or [ErrNoTeamWasFound].
func (t *teamRepository) findTeam(ctx context.Context, column string, value any) (models.Team, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindTeamQuery(t.dialect, column, value)
	if err != nil {
		log.Err(err).Str("func", "teamRepository.findTeam").Msg("failed to build query")
		return models.Team{}, err
	}

	team, err := scanTeam(t.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Team{}, ErrNoTeamWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "teamRepository.findTeam").Str("column", column).Bool("retryable", t.retryable(err)).Msg("failed to find team")
		return models.Team{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	members, err := t.membersOf(ctx, team.ID)
	if err != nil {
		return models.Team{}, err
	}
	team.MemberIDs = members[team.ID]

	return team, nil
}

// ListTeams counts the filtered set, then loads the requested page and the
// members of every team on it.
func (t *teamRepository) ListTeams(ctx context.Context, filter models.TeamFilter) ([]models.Team, int, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "teamRepository.ListTeams").
		Int("page", filter.Page).
		Int("page_size", filter.PageSize).
		Logger()

	countQuery, countArgs, err := buildCountTeamsQuery(t.dialect, filter)
	if err != nil {
		log.Err(err).Msg("failed to build count query")
		return nil, 0, err
	}

	var total int
	if err = t.DB.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Bool("retryable", t.retryable(err)).Msg("failed to count teams")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := buildListTeamsQuery(t.dialect, filter)
	if err != nil {
		log.Err(err).Msg("failed to build list query")
		return nil, 0, err
	}

	rows, err := t.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Bool("retryable", t.retryable(err)).Msg("failed to execute list query")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	teams := make([]models.Team, 0, filter.PageSize)
	for rows.Next() {
		team, scanErr := scanTeam(rows)
		if scanErr != nil {
			log.Err(scanErr).Msg("failed to scan team row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		teams = append(teams, team)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Msg("error occurred during rows iteration")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	if len(teams) == 0 {
		return teams, total, nil
	}

	ids := make([]uuid.UUID, 0, len(teams))
	for _, team := range teams {
		ids = append(ids, team.ID)
	}

	members, err := t.membersOf(ctx, ids...)
	if err != nil {
		return nil, 0, err
	}
	for i := range teams {
		teams[i].MemberIDs = members[teams[i].ID]
	}

	return teams, total, nil
}

// membersOf loads the member IDs of the given teams, keyed by team ID.
func (t *teamRepository) membersOf(ctx context.Context, teamIDs ...uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildTeamMembersQuery(t.dialect, teamIDs)
	if err != nil {
		log.Err(err).Str("func", "teamRepository.membersOf").Msg("failed to build query")
		return nil, err
	}

	rows, err := t.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "teamRepository.membersOf").Int("teams_count", len(teamIDs)).Bool("retryable", t.retryable(err)).Msg("failed to query team members")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	members := make(map[uuid.UUID][]uuid.UUID, len(teamIDs))
	for rows.Next() {
		var teamID, userID uuid.UUID
		if scanErr := rows.Scan(&teamID, &userID); scanErr != nil {
			log.Err(scanErr).Str("func", "teamRepository.membersOf").Msg("failed to scan member row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		members[teamID] = append(members[teamID], userID)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return members, nil
}

func scanTeam(row rowScanner) (models.Team, error) {
	var team models.Team
	err := row.Scan(&team.ID, &team.Name, &team.Tag, &team.Description, &team.OwnerID, &team.CreatedAt, &team.UpdatedAt)
	if err != nil {
		return models.Team{}, err
	}

	team.CreatedAt = team.CreatedAt.UTC()
	team.UpdatedAt = team.UpdatedAt.UTC()
	return team, nil
}
