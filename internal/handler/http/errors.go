// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while decoding requests. Their messages are safe
// to return to the caller.
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request carries no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of the
	// form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	ErrInvalidRequestBody = errors.New("invalid request body")
	ErrInvalidID          = errors.New("invalid id")
	ErrInvalidPage        = errors.New("page must be an integer")
	ErrInvalidPageSize    = errors.New("pageSize must be an integer")
)
