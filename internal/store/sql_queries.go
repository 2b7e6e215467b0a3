// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-scrims/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

const teamMembersTable = "team_members"

var (
	userColumns = []string{"id", "username", "email", "password_hash", "created_at", "updated_at"}
	teamColumns = []string{"id", "name", "tag", "description", "owner_id", "created_at", "updated_at"}
)

// UUIDs are passed as strings: squirrel expands array-typed values of sq.Eq
// into IN lists, and uuid.UUID is a [16]byte.

func buildCreateUserQuery(d Dialect, user models.User) (string, []any, error) {
	query, args, err := d.builder().
		Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.ID.String(), user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildFindUserQuery selects the user whose column equals value.
func buildFindUserQuery(d Dialect, column string, value any) (string, []any, error) {
	query, args, err := d.builder().
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildUpdatePasswordHashQuery(d Dialect, id uuid.UUID, passwordHash string, updatedAt time.Time) (string, []any, error) {
	query, args, err := d.builder().
		Update(models.User{}.TableName()).
		Set("password_hash", passwordHash).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListUsersQuery selects all users, or those whose username contains
// usernameQuery when it is non-empty.
func buildListUsersQuery(d Dialect, usernameQuery string) (string, []any, error) {
	builder := d.builder().
		Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("created_at ASC", "id ASC")

	if usernameQuery != "" {
		builder = builder.Where(d.contains("username", usernameQuery))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildCreateTeamQuery(d Dialect, team models.Team) (string, []any, error) {
	query, args, err := d.builder().
		Insert(team.TableName()).
		Columns(teamColumns...).
		Values(team.ID.String(), team.Name, team.Tag, team.Description, team.OwnerID.String(), team.CreatedAt, team.UpdatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildAddTeamMembersQuery inserts one team_members row per member.
func buildAddTeamMembersQuery(d Dialect, teamID uuid.UUID, memberIDs []uuid.UUID, joinedAt time.Time) (string, []any, error) {
	if len(memberIDs) == 0 {
		return "", nil, fmt.Errorf("%w: no members to add", ErrBuildingSQLQuery)
	}

	builder := d.builder().
		Insert(teamMembersTable).
		Columns("team_id", "user_id", "joined_at")
	for _, memberID := range memberIDs {
		builder = builder.Values(teamID.String(), memberID.String(), joinedAt)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildFindTeamQuery selects the team whose column equals value.
func buildFindTeamQuery(d Dialect, column string, value any) (string, []any, error) {
	query, args, err := d.builder().
		Select(teamColumns...).
		From(models.Team{}.TableName()).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildTeamMembersQuery selects the members of the given teams in joining
// order.
func buildTeamMembersQuery(d Dialect, teamIDs []uuid.UUID) (string, []any, error) {
	ids := make([]string, 0, len(teamIDs))
	for _, id := range teamIDs {
		ids = append(ids, id.String())
	}

	query, args, err := d.builder().
		Select("team_id", "user_id").
		From(teamMembersTable).
		Where(sq.Eq{"team_id": ids}).
		OrderBy("joined_at ASC", "user_id ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func teamFilterPredicate(d Dialect, filter models.TeamFilter) sq.And {
	predicate := sq.And{}
	if filter.Name != "" {
		predicate = append(predicate, d.contains("name", filter.Name))
	}
	if filter.Tag != "" {
		predicate = append(predicate, d.contains("tag", filter.Tag))
	}

	return predicate
}

// buildListTeamsQuery selects one page of filtered teams, newest first.
// filter must already be normalised (Page and PageSize positive).
func buildListTeamsQuery(d Dialect, filter models.TeamFilter) (string, []any, error) {
	builder := d.builder().
		Select(teamColumns...).
		From(models.Team{}.TableName()).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(filter.Offset()))

	if predicate := teamFilterPredicate(d, filter); len(predicate) > 0 {
		builder = builder.Where(predicate)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildCountTeamsQuery counts all teams matching filter, ignoring paging.
func buildCountTeamsQuery(d Dialect, filter models.TeamFilter) (string, []any, error) {
	builder := d.builder().
		Select("COUNT(*)").
		From(models.Team{}.TableName())

	if predicate := teamFilterPredicate(d, filter); len(predicate) > 0 {
		builder = builder.Where(predicate)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
