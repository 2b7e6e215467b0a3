// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-scrims/internal/service"
	"github.com/MKhiriev/go-scrims/internal/utils"
	"github.com/MKhiriev/go-scrims/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sampleTeam(ownerID uuid.UUID) models.Team {
	return models.Team{
		ID:          uuid.MustParse("0191d7a4-3c1e-7e2a-9b7a-2f1f6d8c4b02"),
		Name:        "Night Owls",
		Tag:         "OWL",
		Description: "late scrims only",
		OwnerID:     ownerID,
		MemberIDs:   []uuid.UUID{ownerID},
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

func TestCreateTeam(t *testing.T) {
	ownerID := sampleUser().ID
	request := models.CreateTeamRequest{Name: "Night Owls", Tag: "OWL", Description: "late scrims only"}

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "created", wantStatus: http.StatusCreated},
		{
			name:       "invalid tag",
			err:        service.NewError(service.KindInvalidArgument, "team tag must be exactly 3 characters", nil),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "team tag must be exactly 3 characters",
		},
		{
			name:       "owner missing",
			err:        service.NewError(service.KindNotFound, service.MsgOwnerNotFound, nil),
			wantStatus: http.StatusNotFound,
			wantMsg:    service.MsgOwnerNotFound,
		},
		{
			name:       "name taken",
			err:        service.NewError(service.KindAlreadyExists, service.MsgTeamNameTaken, nil),
			wantStatus: http.StatusConflict,
			wantMsg:    service.MsgTeamNameTaken,
		},
		{
			name:       "identity service down",
			err:        service.NewError(service.KindInternal, service.MsgInternal, errors.New("identity service unavailable")),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    service.MsgInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			th.tokens.EXPECT().Parse(gomock.Any(), testToken).Return(models.Token{UserID: ownerID}, nil)

			team := sampleTeam(ownerID)
			if tt.err != nil {
				team = models.Team{}
			}
			th.teams.EXPECT().
				CreateTeam(gomock.Any(), request.Name, request.Tag, request.Description, ownerID).
				Return(team, tt.err)

			rr := th.do(t, http.MethodPost, "/api/team/create", request, testToken)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.err != nil {
				assert.Equal(t, tt.wantMsg, decodeError(t, rr).Message)
				return
			}

			var body models.CreateTeamResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, team.ID, body.ID)
			assert.Equal(t, ownerID, body.OwnerID)
			assert.Equal(t, "OWL", body.Tag)
		})
	}
}

func TestCreateTeam_RequiresToken(t *testing.T) {
	th := newTestHandler(t)

	rr := th.do(t, http.MethodPost, "/api/team/create", models.CreateTeamRequest{Name: "Night Owls"}, "")

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, ErrEmptyAuthorizationHeader.Error(), decodeError(t, rr).Message)
}

func TestCreateTeam_ForwardsBearerToken(t *testing.T) {
	th := newTestHandler(t)
	ownerID := sampleUser().ID
	th.tokens.EXPECT().Parse(gomock.Any(), testToken).Return(models.Token{UserID: ownerID}, nil)
	th.teams.EXPECT().CreateTeam(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), ownerID).
		DoAndReturn(func(ctx context.Context, _, _, _ string, _ uuid.UUID) (models.Team, error) {
			assert.Equal(t, testToken, utils.GetBearerTokenFromContext(ctx))
			return sampleTeam(ownerID), nil
		})

	rr := th.do(t, http.MethodPost, "/api/team/create", models.CreateTeamRequest{Name: "Night Owls", Tag: "OWL"}, testToken)

	require.Equal(t, http.StatusCreated, rr.Code)
}

func TestGetTeam(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		th := newTestHandler(t)
		team := sampleTeam(sampleUser().ID)
		th.teams.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)

		rr := th.do(t, http.MethodGet, "/api/team/"+team.ID.String(), nil, "")

		require.Equal(t, http.StatusOK, rr.Code)
		var body models.TeamResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, team.MemberIDs, body.MemberIDs)
		assert.Equal(t, team.Description, body.Description)
	})

	t.Run("not found", func(t *testing.T) {
		th := newTestHandler(t)
		id := uuid.New()
		th.teams.EXPECT().GetByID(gomock.Any(), id).
			Return(models.Team{}, service.NewError(service.KindNotFound, service.MsgTeamNotFound, nil))

		rr := th.do(t, http.MethodGet, "/api/team/"+id.String(), nil, "")

		require.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, service.MsgTeamNotFound, decodeError(t, rr).Message)
	})

	t.Run("malformed id", func(t *testing.T) {
		th := newTestHandler(t)

		rr := th.do(t, http.MethodGet, "/api/team/123", nil, "")

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestListTeams(t *testing.T) {
	t.Run("passes filter through", func(t *testing.T) {
		th := newTestHandler(t)
		team := sampleTeam(sampleUser().ID)
		th.teams.EXPECT().
			List(gomock.Any(), models.TeamFilter{Page: 2, PageSize: 5, Name: "Owl", Tag: "OW"}).
			Return(models.TeamPage{Items: []models.Team{team}, TotalCount: 6, Page: 2, PageSize: 5}, nil)

		rr := th.do(t, http.MethodGet, "/api/team?page=2&pageSize=5&name=Owl&tag=OW", nil, "")

		require.Equal(t, http.StatusOK, rr.Code)
		var body models.PagedTeamsResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, 6, body.TotalCount)
		assert.Equal(t, 2, body.Page)
		assert.Equal(t, 5, body.PageSize)
		require.Len(t, body.Items, 1)
		assert.Equal(t, team.ID, body.Items[0].ID)
	})

	t.Run("empty page is an empty array", func(t *testing.T) {
		th := newTestHandler(t)
		th.teams.EXPECT().List(gomock.Any(), models.TeamFilter{}).
			Return(models.TeamPage{Page: 1, PageSize: 10}, nil)

		rr := th.do(t, http.MethodGet, "/api/team", nil, "")

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"items":[],"totalCount":0,"page":1,"pageSize":10}`, rr.Body.String())
	})

	t.Run("page size above limit", func(t *testing.T) {
		th := newTestHandler(t)
		th.teams.EXPECT().List(gomock.Any(), models.TeamFilter{PageSize: 101}).
			Return(models.TeamPage{}, service.NewError(service.KindInvalidArgument, "page size must be between 1 and 100", nil))

		rr := th.do(t, http.MethodGet, "/api/team?pageSize=101", nil, "")

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestTeamFilterFromQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    models.TeamFilter
		wantErr error
	}{
		{name: "empty", query: "", want: models.TeamFilter{}},
		{name: "all params", query: "?page=3&pageSize=20&name=a&tag=b", want: models.TeamFilter{Page: 3, PageSize: 20, Name: "a", Tag: "b"}},
		{name: "negative page is passed on", query: "?page=-1", want: models.TeamFilter{Page: -1}},
		{name: "non-numeric page", query: "?page=one", wantErr: ErrInvalidPage},
		{name: "non-numeric page size", query: "?pageSize=1.5", wantErr: ErrInvalidPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/team"+tt.query, nil)

			got, err := teamFilterFromQuery(req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
