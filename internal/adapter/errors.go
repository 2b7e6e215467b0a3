// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrIdentityServiceUnavailable is returned when the identity service
	// could not give a definitive answer.
	ErrIdentityServiceUnavailable = errors.New("identity service unavailable")

	ErrInvalidBaseURL = errors.New("invalid identity service url")
)
