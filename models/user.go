// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered identity used for authentication and as the
// owner reference of teams.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user, assigned on registration.
	ID uuid.UUID `json:"id"`

	// Username is globally unique and 6 to 30 characters long.
	Username string `json:"username"`

	// Email is globally unique and must be a syntactically valid address.
	Email string `json:"email"`

	// PasswordHash stores the encoded salted password hash
	// (base64(salt) "." base64(key)). It is never the plaintext and is
	// never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user registered.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is bumped on every credential rotation.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// LoginResult is the outcome of a successful login: the signed token bundle
// and the public fields of the authenticated user.
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
}
