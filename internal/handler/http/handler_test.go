// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-scrims/internal/logger"
	"github.com/MKhiriev/go-scrims/internal/mock"
	"github.com/MKhiriev/go-scrims/internal/service"
	"github.com/MKhiriev/go-scrims/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testToken = "header.payload.signature"

type testHandler struct {
	identity *mock.MockIdentityService
	teams    *mock.MockTeamService
	tokens   *mock.MockTokenService
	router   http.Handler
}

func newTestHandler(t *testing.T) *testHandler {
	t.Helper()

	ctrl := gomock.NewController(t)
	th := &testHandler{
		identity: mock.NewMockIdentityService(ctrl),
		teams:    mock.NewMockTeamService(ctrl),
		tokens:   mock.NewMockTokenService(ctrl),
	}

	h := NewHandler(&service.Services{
		IdentityService: th.identity,
		TeamService:     th.teams,
		TokenService:    th.tokens,
	}, time.Second, logger.Nop())
	th.router = h.Init()

	return th
}

func (th *testHandler) do(t *testing.T, method, target string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	th.router.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, rr.Code, body.StatusCode)
	return body
}

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, 5*time.Second, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
	assert.Equal(t, 5*time.Second, h.requestTimeout)
}
