// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-scrims/internal/service"
	"github.com/MKhiriev/go-scrims/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var createdAt = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func sampleUser() models.User {
	return models.User{
		ID:           uuid.MustParse("0191d7a4-3c1e-7e2a-9b7a-2f1f6d8c4a01"),
		Username:     "player_one",
		Email:        "player@example.com",
		PasswordHash: "c2FsdA==.a2V5",
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
}

func TestRegister(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		th := newTestHandler(t)
		user := sampleUser()
		th.identity.EXPECT().
			CreateUser(gomock.Any(), "player_one", "player@example.com", "secret").
			Return(user, nil)

		rr := th.do(t, http.MethodPost, "/api/user/register", models.RegisterRequest{
			Username: "player_one", Email: "player@example.com", Password: "secret",
		}, "")

		require.Equal(t, http.StatusCreated, rr.Code)
		var body models.RegisterResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, user.ID, body.ID)
		assert.Equal(t, "player_one", body.Username)
		assert.Equal(t, "player@example.com", body.Email)
		assert.True(t, createdAt.Equal(body.CreatedAt))
		assert.NotContains(t, rr.Body.String(), user.PasswordHash)
	})

	t.Run("malformed json", func(t *testing.T) {
		th := newTestHandler(t)

		rr := th.do(t, http.MethodPost, "/api/user/register", "{", "")

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, ErrInvalidRequestBody.Error(), decodeError(t, rr).Message)
	})

	t.Run("username taken", func(t *testing.T) {
		th := newTestHandler(t)
		th.identity.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.User{}, service.NewError(service.KindAlreadyExists, service.MsgUsernameTaken, nil))

		rr := th.do(t, http.MethodPost, "/api/user/register", models.RegisterRequest{
			Username: "player_one", Email: "player@example.com", Password: "secret",
		}, "")

		require.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, service.MsgUsernameTaken, decodeError(t, rr).Message)
	})

	t.Run("invalid argument", func(t *testing.T) {
		th := newTestHandler(t)
		th.identity.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.User{}, service.NewError(service.KindInvalidArgument, "username must be between 6 and 30 characters", nil))

		rr := th.do(t, http.MethodPost, "/api/user/register", models.RegisterRequest{Username: "abc"}, "")

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "username must be between 6 and 30 characters", decodeError(t, rr).Message)
	})
}

func TestLogin(t *testing.T) {
	expiresAt := createdAt.Add(service.TokenDuration)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "ok", wantStatus: http.StatusOK},
		{
			name:       "unknown email",
			err:        service.NewError(service.KindNotFound, service.MsgUserNotFound, nil),
			wantStatus: http.StatusNotFound,
			wantMsg:    service.MsgUserNotFound,
		},
		{
			name:       "wrong password",
			err:        service.NewError(service.KindInvalidCredentials, service.MsgInvalidCredentials, nil),
			wantStatus: http.StatusUnauthorized,
			wantMsg:    service.MsgInvalidCredentials,
		},
		{
			name:       "internal failure hides cause",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    service.MsgInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			user := sampleUser()
			result := models.LoginResult{
				Token:     testToken,
				ExpiresAt: expiresAt,
				ID:        user.ID,
				Username:  user.Username,
				Email:     user.Email,
			}
			if tt.err != nil {
				result = models.LoginResult{}
			}
			th.identity.EXPECT().Login(gomock.Any(), "player@example.com", "secret").Return(result, tt.err)

			rr := th.do(t, http.MethodPost, "/api/user/login", models.LoginRequest{
				Email: "player@example.com", Password: "secret",
			}, "")

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.err != nil {
				assert.Equal(t, tt.wantMsg, decodeError(t, rr).Message)
				assert.NotContains(t, rr.Body.String(), "connection refused")
				return
			}

			var body models.LoginResult
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, testToken, body.Token)
			assert.True(t, expiresAt.Equal(body.ExpiresAt))
			assert.Equal(t, user.ID, body.ID)
		})
	}
}

func TestListUsers(t *testing.T) {
	th := newTestHandler(t)
	th.identity.EXPECT().ListUsers(gomock.Any()).Return(nil, nil)

	rr := th.do(t, http.MethodGet, "/api/user", nil, "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestGetUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		th := newTestHandler(t)
		user := sampleUser()
		th.identity.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)

		rr := th.do(t, http.MethodGet, "/api/user/"+user.ID.String(), nil, "")

		require.Equal(t, http.StatusOK, rr.Code)
		var body models.UserResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, models.NewUserResponse(user).ID, body.ID)
		assert.Equal(t, user.Username, body.Username)
	})

	t.Run("not found", func(t *testing.T) {
		th := newTestHandler(t)
		id := uuid.New()
		th.identity.EXPECT().GetByID(gomock.Any(), id).
			Return(models.User{}, service.NewError(service.KindNotFound, service.MsgUserNotFound, nil))

		rr := th.do(t, http.MethodGet, "/api/user/"+id.String(), nil, "")

		require.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, service.MsgUserNotFound, decodeError(t, rr).Message)
	})

	t.Run("malformed id", func(t *testing.T) {
		th := newTestHandler(t)

		rr := th.do(t, http.MethodGet, "/api/user/not-a-uuid", nil, "")

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, ErrInvalidID.Error(), decodeError(t, rr).Message)
	})
}

func TestMe(t *testing.T) {
	t.Run("returns principal", func(t *testing.T) {
		th := newTestHandler(t)
		user := sampleUser()
		th.tokens.EXPECT().Parse(gomock.Any(), testToken).Return(models.Token{UserID: user.ID}, nil)
		th.identity.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)

		rr := th.do(t, http.MethodGet, "/api/user/me", nil, testToken)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), user.ID.String())
	})

	t.Run("no token", func(t *testing.T) {
		th := newTestHandler(t)

		rr := th.do(t, http.MethodGet, "/api/user/me", nil, "")

		require.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestUpdatePassword(t *testing.T) {
	id := sampleUser().ID

	t.Run("rotated", func(t *testing.T) {
		th := newTestHandler(t)
		th.tokens.EXPECT().Parse(gomock.Any(), testToken).Return(models.Token{UserID: id}, nil)
		th.identity.EXPECT().UpdatePassword(gomock.Any(), id, "old-secret", "new-secret").Return(true, nil)

		rr := th.do(t, http.MethodPut, "/api/user/me/password", models.UpdatePasswordRequest{
			CurrentPassword: "old-secret", NewPassword: "new-secret",
		}, testToken)

		require.Equal(t, http.StatusOK, rr.Code)
		var body models.UpdatePasswordResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, service.MsgPasswordUpdated, body.Message)
	})

	t.Run("wrong current password", func(t *testing.T) {
		th := newTestHandler(t)
		th.tokens.EXPECT().Parse(gomock.Any(), testToken).Return(models.Token{UserID: id}, nil)
		th.identity.EXPECT().UpdatePassword(gomock.Any(), id, "wrong", "new-secret").
			Return(false, service.NewError(service.KindInvalidCredentials, service.MsgInvalidCredentials, nil))

		rr := th.do(t, http.MethodPut, "/api/user/me/password", models.UpdatePasswordRequest{
			CurrentPassword: "wrong", NewPassword: "new-secret",
		}, testToken)

		require.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, service.MsgInvalidCredentials, decodeError(t, rr).Message)
	})

	t.Run("malformed json", func(t *testing.T) {
		th := newTestHandler(t)
		th.tokens.EXPECT().Parse(gomock.Any(), testToken).Return(models.Token{UserID: id}, nil)

		rr := th.do(t, http.MethodPut, "/api/user/me/password", "not json", testToken)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestSearchUsers(t *testing.T) {
	t.Run("matches", func(t *testing.T) {
		th := newTestHandler(t)
		user := sampleUser()
		th.identity.EXPECT().SearchByUsername(gomock.Any(), "player").Return([]models.User{user}, nil)

		rr := th.do(t, http.MethodGet, "/api/user/search?username=player", nil, "")

		require.Equal(t, http.StatusOK, rr.Code)
		var body []models.UserResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		require.Len(t, body, 1)
		assert.Equal(t, user.ID, body[0].ID)
	})

	t.Run("empty query", func(t *testing.T) {
		th := newTestHandler(t)
		th.identity.EXPECT().SearchByUsername(gomock.Any(), "").
			Return(nil, service.NewError(service.KindInvalidArgument, service.MsgEmptySearchQuery, nil))

		rr := th.do(t, http.MethodGet, "/api/user/search", nil, "")

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, service.MsgEmptySearchQuery, decodeError(t, rr).Message)
	})
}
