// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-scrims/internal/config"
	"github.com/MKhiriev/go-scrims/internal/logger"
	"github.com/MKhiriev/go-scrims/internal/utils"
	"github.com/google/uuid"
)

const userByIDPath = "/api/user/{id}"

type httpIdentityValidator struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPIdentityValidator constructs an HTTP implementation of
// [IdentityValidator].
// It normalises and validates cfg.IdentityServiceURL and configures the
// underlying HTTP client with the resolved base URL, the per-attempt timeout
// and the retry policy (cfg.RetryCount extra attempts, cfg.RetryWait apart).
//
// Returns an error wrapping [ErrInvalidBaseURL] if the URL is empty or cannot
// be parsed.
func NewHTTPIdentityValidator(cfg config.Adapter, logger *logger.Logger) (IdentityValidator, error) {
	baseURL, err := normalizeBaseURL(cfg.IdentityServiceURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	client := utils.NewHTTPClient().WithRetries(cfg.RetryCount, cfg.RetryWait)
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpIdentityValidator{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Exists implements [IdentityValidator] with GET /api/user/{id}.
//
// The inbound bearer token, if any, is forwarded. Cancelling ctx aborts the
// call and any pending retries.
func (h *httpIdentityValidator) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	log := logger.FromContext(ctx)

	req := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id.String())
	if token := utils.GetBearerTokenFromContext(ctx); token != "" {
		req.SetAuthToken(token)
	}

	resp, err := req.Get(userByIDPath)
	if err != nil {
		log.Err(err).Str("func", "httpIdentityValidator.Exists").Str("user_id", id.String()).Msg("identity lookup failed")
		return false, fmt.Errorf("%w: %w", ErrIdentityServiceUnavailable, err)
	}

	exists, err := mapExistsResponse(resp)
	if err != nil {
		log.Err(err).Str("func", "httpIdentityValidator.Exists").
			Str("user_id", id.String()).
			Int("attempts", resp.Request.Attempt).
			Msg("identity service gave no definitive answer")
		return false, err
	}

	log.Debug().Str("func", "httpIdentityValidator.Exists").
		Str("user_id", id.String()).
		Bool("exists", exists).
		Msg("identity lookup finished")
	return exists, nil
}
