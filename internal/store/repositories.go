// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-scrims/internal/logger"

// Repositories groups the repositories a service is wired with. A service
// only uses the ones it needs.
type Repositories struct {
	UserRepository UserRepository
	TeamRepository TeamRepository
}

// NewRepositories builds every repository over one connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, logger),
		TeamRepository: NewTeamRepository(db, logger),
	}
}
