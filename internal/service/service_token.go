// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-scrims/internal/config"
	"github.com/MKhiriev/go-scrims/internal/utils"
	"github.com/MKhiriev/go-scrims/models"
)

// TokenDuration is the fixed lifetime of every issued token. Tokens cannot be
// revoked, so a token stays valid for this long even after a password change.
const TokenDuration = 7 * 24 * time.Hour

// tokenService is the concrete implementation of TokenService. It signs
// HS256 JWTs with a symmetric key shared by all services.
type tokenService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	now func() time.Time
}

// NewTokenService constructs a TokenService from the App configuration.
//
// A missing sign key or issuer is a configuration error, not a per-request
// one, so it is reported here and the caller is expected to abort startup.
func NewTokenService(cfg config.App) (TokenService, error) {
	if cfg.TokenSignKey == "" {
		return nil, ErrEmptyTokenSignKey
	}
	if cfg.TokenIssuer == "" {
		return nil, ErrEmptyTokenIssuer
	}

	return &tokenService{
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		now:          time.Now,
	}, nil
}

// Issue signs a token for user carrying its id, username and email.
// The token expires [TokenDuration] after issuance.
func (s *tokenService) Issue(ctx context.Context, user models.User) (models.Token, error) {
	subject := utils.TokenSubject{UserID: user.ID, Username: user.Username, Email: user.Email}

	token, err := utils.GenerateJWTToken(s.tokenIssuer, subject, TokenDuration, s.tokenSignKey, s.now())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Parse validates the signature, issuer and expiry of tokenString.
//
// Any validation failure is normalised to ErrTokenIsExpiredOrInvalid so that
// callers do not need to inspect low-level JWT errors.
func (s *tokenService) Parse(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}
