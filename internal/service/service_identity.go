// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-scrims/internal/crypto"
	"github.com/MKhiriev/go-scrims/internal/logger"
	"github.com/MKhiriev/go-scrims/internal/store"
	"github.com/MKhiriev/go-scrims/internal/utils"
	"github.com/MKhiriev/go-scrims/models"
	"github.com/google/uuid"
)

// identityService is the concrete implementation of IdentityService.
// It never caches users across calls: the repository is the only source of
// truth.
type identityService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// passwordHasher derives and verifies stored password hashes.
	passwordHasher crypto.PasswordHasher

	// tokenService signs the session token returned by Login.
	tokenService TokenService

	idGenerator *utils.UUIDGenerator
	now         func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewIdentityService constructs an IdentityService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewIdentityService(userRepository store.UserRepository, passwordHasher crypto.PasswordHasher, tokenService TokenService, logger *logger.Logger) IdentityService {
	return &identityService{
		userRepository: userRepository,
		passwordHasher: passwordHasher,
		tokenService:   tokenService,
		idGenerator:    utils.NewUUIDGenerator(),
		now:            time.Now,
		logger:         logger,
	}
}

// CreateUser registers a new user.
//
// Username uniqueness is checked before email uniqueness, and both are
// checked even though the storage constraints would also catch them: the
// constraints only decide races between concurrent registrations.
//
// Returns the stored user or an *Error of kind:
//   - KindInvalidArgument if username or email is blank.
//   - KindAlreadyExists if the username or the email is taken.
//   - KindInternal on hashing or storage failures.
func (s *identityService) CreateUser(ctx context.Context, username, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if isBlank(username) || isBlank(email) {
		log.Error().Str("username", username).Str("email", email).Msg("invalid user data provided")
		return models.User{}, invalidArgument("username and email are required", nil)
	}

	_, err := s.userRepository.FindUserByUsername(ctx, username)
	if err == nil {
		log.Warn().Str("username", username).Msg("username already taken")
		return models.User{}, alreadyExists(MsgUsernameTaken, store.ErrUsernameAlreadyExists)
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, internal(err)
	}

	_, err = s.userRepository.FindUserByEmail(ctx, email)
	if err == nil {
		log.Warn().Str("email", email).Msg("email already taken")
		return models.User{}, alreadyExists(MsgEmailTaken, store.ErrEmailAlreadyExists)
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, internal(err)
	}

	passwordHash, err := s.passwordHasher.Hash(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, internal(err)
	}

	now := s.timestamp()
	user, err := s.userRepository.CreateUser(ctx, models.User{
		ID:           s.idGenerator.Generate(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fromStoreError(err)
	}

	log.Info().Str("user_id", user.ID.String()).Msg("user registered")
	return user, nil
}

// Login authenticates a user by email and password and issues a session
// token.
//
// Returns KindNotFound for an unknown email and KindInvalidCredentials for a
// wrong password.
func (s *identityService) Login(ctx context.Context, email, password string) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.LoginResult{}, fromStoreError(err)
	}

	if !s.passwordHasher.Verify(password, user.PasswordHash) {
		log.Warn().Str("user_id", user.ID.String()).Msg("wrong password")
		return models.LoginResult{}, invalidCredentials(MsgInvalidCredentials, nil)
	}

	token, err := s.tokenService.Issue(ctx, user)
	if err != nil {
		log.Err(err).Str("user_id", user.ID.String()).Msg("token issuance failed")
		return models.LoginResult{}, internal(err)
	}

	return models.LoginResult{
		Token:     token.String(),
		ExpiresAt: token.ExpiresAt(),
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
	}, nil
}

func (s *identityService) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	if id == uuid.Nil {
		return models.User{}, invalidArgument(MsgEmptyID, nil)
	}

	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", id.String()).Msg("user search by id failed")
		return models.User{}, fromStoreError(err)
	}

	return user, nil
}

// SearchByUsername returns every user whose username contains query.
// Matching is case-sensitive and the result follows the store's order.
func (s *identityService) SearchByUsername(ctx context.Context, query string) ([]models.User, error) {
	if isBlank(query) {
		return nil, invalidArgument(MsgEmptySearchQuery, nil)
	}

	users, err := s.userRepository.SearchUsersByUsername(ctx, query)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("query", query).Msg("user search by username failed")
		return nil, internal(err)
	}

	return users, nil
}

// UpdatePassword replaces the password of user id after verifying the
// current one, and bumps UpdatedAt.
//
// Tokens issued before the rotation stay valid until they expire.
func (s *identityService) UpdatePassword(ctx context.Context, id uuid.UUID, currentPassword, newPassword string) (bool, error) {
	log := logger.FromContext(ctx)

	if id == uuid.Nil || isBlank(currentPassword) || isBlank(newPassword) {
		return false, invalidArgument("id, current password and new password are required", nil)
	}

	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		log.Err(err).Str("user_id", id.String()).Msg("user search by id failed")
		return false, fromStoreError(err)
	}

	if !s.passwordHasher.Verify(currentPassword, user.PasswordHash) {
		log.Warn().Str("user_id", id.String()).Msg("wrong current password")
		return false, invalidCredentials(MsgInvalidCredentials, nil)
	}

	passwordHash, err := s.passwordHasher.Hash(newPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return false, internal(err)
	}

	if err = s.userRepository.UpdatePasswordHash(ctx, id, passwordHash, s.timestamp()); err != nil {
		log.Err(err).Str("user_id", id.String()).Msg("password update failed")
		return false, fromStoreError(err)
	}

	log.Info().Str("user_id", id.String()).Msg("password rotated")
	return true, nil
}

func (s *identityService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing users failed")
		return nil, internal(err)
	}

	return users, nil
}

// timestamp returns the current UTC time at the precision both SQL
// backends store.
func (s *identityService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

// fromStoreError classifies a repository error.
func fromStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return alreadyExists(MsgUsernameTaken, err)
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return alreadyExists(MsgEmailTaken, err)
	case errors.Is(err, store.ErrTeamNameAlreadyExists):
		return alreadyExists(MsgTeamNameTaken, err)
	case errors.Is(err, store.ErrNoUserWasFound):
		return notFound(MsgUserNotFound, err)
	case errors.Is(err, store.ErrNoTeamWasFound):
		return notFound(MsgTeamNotFound, err)
	default:
		return internal(err)
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
