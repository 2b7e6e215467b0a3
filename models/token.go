// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the claim set carried by session tokens: the standard registered
// claims (sub, iss, iat, exp) plus the principal's username and email.
type Claims struct {
	jwt.RegisteredClaims

	Username string `json:"username"`
	Email    string `json:"email"`
}

// Token wraps a signed session token with convenience accessors.
//
// It embeds [jwt.Token] for low-level token operations and keeps the parsed
// [Claims] and the subject converted to a UUID, so callers do not need to
// re-parse the claim set.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims is the decoded claim set.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the subject claim parsed as a UUID.
	UserID uuid.UUID `json:"-"`
}

// ExpiresAt returns the expiry time of the token or the zero time when the
// token carries no exp claim.
func (t *Token) ExpiresAt() time.Time {
	if t.Claims.ExpiresAt == nil {
		return time.Time{}
	}
	return t.Claims.ExpiresAt.Time
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
