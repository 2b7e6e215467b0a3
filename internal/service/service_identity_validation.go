// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-scrims/internal/validators"
	"github.com/MKhiriev/go-scrims/models"
	"github.com/google/uuid"
)

// IdentityServiceWrapper defines middleware composition for IdentityService.
// Implementations wrap an existing IdentityService to add behavior such as
// input validation.
type IdentityServiceWrapper interface {
	Wrap(IdentityService) IdentityService
}

// IdentityValidationService checks the shape of registration, login and
// password rotation input before handing it to the wrapped IdentityService.
type IdentityValidationService struct {
	inner     IdentityService
	validator validators.Validator
}

func NewIdentityValidationService() IdentityServiceWrapper {
	return &IdentityValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *IdentityValidationService) Wrap(inner IdentityService) IdentityService {
	v.inner = inner
	return v
}

// CreateUser enforces the username length, email syntax and a non-blank
// password, in that order.
func (v *IdentityValidationService) CreateUser(ctx context.Context, username, email, password string) (models.User, error) {
	request := models.RegisterRequest{Username: username, Email: email, Password: password}
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.User{}, invalidArgument(err.Error(), err)
	}

	return v.inner.CreateUser(ctx, username, email, password)
}

func (v *IdentityValidationService) Login(ctx context.Context, email, password string) (models.LoginResult, error) {
	if err := v.validator.Validate(ctx, models.LoginRequest{Email: email, Password: password}); err != nil {
		return models.LoginResult{}, invalidArgument(err.Error(), err)
	}

	return v.inner.Login(ctx, email, password)
}

func (v *IdentityValidationService) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	return v.inner.GetByID(ctx, id)
}

func (v *IdentityValidationService) SearchByUsername(ctx context.Context, query string) ([]models.User, error) {
	return v.inner.SearchByUsername(ctx, query)
}

func (v *IdentityValidationService) UpdatePassword(ctx context.Context, id uuid.UUID, currentPassword, newPassword string) (bool, error) {
	request := models.UpdatePasswordRequest{CurrentPassword: currentPassword, NewPassword: newPassword}
	if err := v.validator.Validate(ctx, request); err != nil {
		return false, invalidArgument(err.Error(), err)
	}

	return v.inner.UpdatePassword(ctx, id, currentPassword, newPassword)
}

func (v *IdentityValidationService) ListUsers(ctx context.Context) ([]models.User, error) {
	return v.inner.ListUsers(ctx)
}
