// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// RegisterResponse is returned with 201 Created after a registration.
type RegisterResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserResponse is the public projection of a [User].
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewUserResponse projects a stored user onto its public fields.
func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// NewUserResponses projects a list of users, never returning nil so that
// the JSON encoding is always an array.
func NewUserResponses(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, NewUserResponse(u))
	}
	return responses
}

// UpdatePasswordResponse is returned after a successful credential rotation.
type UpdatePasswordResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CreateTeamResponse is returned with 201 Created after a team is created.
type CreateTeamResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Tag         string    `json:"tag"`
	Description string    `json:"description"`
	OwnerID     uuid.UUID `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TeamResponse is the public projection of a [Team].
type TeamResponse struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Tag         string      `json:"tag"`
	Description string      `json:"description"`
	OwnerID     uuid.UUID   `json:"ownerId"`
	MemberIDs   []uuid.UUID `json:"memberIds"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// NewTeamResponse projects a stored team onto its public fields.
func NewTeamResponse(t Team) TeamResponse {
	memberIDs := t.MemberIDs
	if memberIDs == nil {
		memberIDs = []uuid.UUID{}
	}
	return TeamResponse{
		ID:          t.ID,
		Name:        t.Name,
		Tag:         t.Tag,
		Description: t.Description,
		OwnerID:     t.OwnerID,
		MemberIDs:   memberIDs,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// PagedTeamsResponse is the body of GET /api/team.
type PagedTeamsResponse struct {
	Items      []TeamResponse `json:"items"`
	TotalCount int            `json:"totalCount"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
}

// NewPagedTeamsResponse projects a [TeamPage].
func NewPagedTeamsResponse(page TeamPage) PagedTeamsResponse {
	items := make([]TeamResponse, 0, len(page.Items))
	for _, t := range page.Items {
		items = append(items, NewTeamResponse(t))
	}
	return PagedTeamsResponse{
		Items:      items,
		TotalCount: page.TotalCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
	}
}

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}
