// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for services this process depends on.
//
// The team service depends on the identity service only to confirm that a
// team owner exists. [IdentityValidator] is that dependency; the package
// ships an HTTP implementation ([NewHTTPIdentityValidator]) built on resty.
//
// Responses are mapped by mapExistsResponse so that callers can tell a clean
// "no such user" apart from an unreachable identity service with
// [errors.Is] on [ErrIdentityServiceUnavailable].
package adapter

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/identity_validator_mock.go -package=mock

// IdentityValidator confirms that a principal exists in the identity service.
type IdentityValidator interface {
	// Exists reports whether a user with id is registered.
	//
	// A definitive answer from the identity service yields (exists, nil).
	// When no definitive answer can be obtained (transport failure, timeout
	// or a 5xx after retries) Exists returns false and an error wrapping
	// [ErrIdentityServiceUnavailable].
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
