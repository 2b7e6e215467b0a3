// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HTTP response
// writing, HTTP client initialization, JWT token generation and validation,
// and UUID generation.
package utils

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated principal's ID
// (a uuid.UUID) in the context.
var UserIDCtxKey = contextKey("userID")

// BearerTokenCtxKey is the key used to store the raw bearer token of the
// inbound request, so outbound calls can forward it.
var BearerTokenCtxKey = contextKey("bearerToken")

// GetUserIDFromContext retrieves the authenticated principal's ID.
//
// ok is false when the value is missing, has an unexpected type or is the
// nil UUID.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

// GetBearerTokenFromContext retrieves the raw bearer token of the inbound
// request, or an empty string.
func GetBearerTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(BearerTokenCtxKey).(string)
	return token
}

// WithPrincipal returns a copy of ctx carrying the authenticated user ID and
// the bearer token it was authenticated with.
func WithPrincipal(ctx context.Context, userID uuid.UUID, bearerToken string) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, BearerTokenCtxKey, bearerToken)
}
