// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUsername      = errors.New("username must be between 6 and 30 characters")
	ErrInvalidEmail         = errors.New("email must be a valid email address")
	ErrEmptyPassword        = errors.New("password is required")
	ErrEmptyCurrentPassword = errors.New("current password is required")
	ErrEmptyNewPassword     = errors.New("new password is required")

	ErrInvalidTeamName = errors.New("team name must be between 6 and 60 characters")
	ErrInvalidTeamTag  = errors.New("team tag must be exactly 3 characters")
	ErrInvalidPage     = errors.New("page must be a positive number")
	ErrInvalidPageSize = errors.New("page size must be between 1 and 100")
)
