// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-scrims/models"
)

// Field name constants used to restrict validation of user input.
const (
	FieldUsername        = "username"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldCurrentPassword = "current_password"
	FieldNewPassword     = "new_password"
)

const (
	MinUsernameLength = 6
	MaxUsernameLength = 30
)

// UserValidator implements the Validator interface for registration, login
// and password rotation input, and for [models.User] itself.
type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches on the concrete type of obj. Pointer and value forms
// are both accepted.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value, fields...)

	case models.UpdatePasswordRequest:
		return v.validateUpdatePasswordRequest(value, fields...)
	case *models.UpdatePasswordRequest:
		return v.validateUpdatePasswordRequest(*value, fields...)

	case models.User:
		return v.validateRegisterRequest(models.RegisterRequest{Username: value.Username, Email: value.Email}, defaultFields(fields, FieldUsername, FieldEmail)...)
	case *models.User:
		return v.validateRegisterRequest(models.RegisterRequest{Username: value.Username, Email: value.Email}, defaultFields(fields, FieldUsername, FieldEmail)...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegisterRequest(request models.RegisterRequest, fields ...string) error {
	for _, f := range defaultFields(fields, FieldUsername, FieldEmail, FieldPassword) {
		switch f {
		case FieldUsername:
			if !lengthBetween(request.Username, MinUsernameLength, MaxUsernameLength) {
				return ErrInvalidUsername
			}
		case FieldEmail:
			if !isValidEmail(request.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if isBlank(request.Password) {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateLoginRequest(request models.LoginRequest, fields ...string) error {
	for _, f := range defaultFields(fields, FieldEmail, FieldPassword) {
		switch f {
		case FieldEmail:
			if isBlank(request.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if isBlank(request.Password) {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateUpdatePasswordRequest(request models.UpdatePasswordRequest, fields ...string) error {
	for _, f := range defaultFields(fields, FieldCurrentPassword, FieldNewPassword) {
		switch f {
		case FieldCurrentPassword:
			if isBlank(request.CurrentPassword) {
				return ErrEmptyCurrentPassword
			}
		case FieldNewPassword:
			if isBlank(request.NewPassword) {
				return ErrEmptyNewPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isValidEmail accepts a bare addr-spec: no display name, no angle brackets.
func isValidEmail(email string) bool {
	if isBlank(email) {
		return false
	}

	address, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}

	return address.Name == "" && address.Address == email
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// charCount counts code points. A blank string counts as zero.
func charCount(s string) int {
	if isBlank(s) {
		return 0
	}
	return utf8.RuneCountInString(s)
}

func lengthBetween(s string, minLength, maxLength int) bool {
	n := charCount(s)
	return n >= minLength && n <= maxLength
}

func defaultFields(fields []string, defaults ...string) []string {
	if len(fields) == 0 {
		return defaults
	}
	return fields
}
